package world

import (
	"context"
	"testing"
)

func TestParseLayout(t *testing.T) {
	tests := []struct {
		name    string
		want    Layout
		wantErr bool
	}{
		{"", LayoutClustered, false},
		{"clustered", LayoutClustered, false},
		{"Scatter", LayoutScatter, false},
		{" test ", LayoutTest, false},
		{"bsp", "", true},
	}

	for _, tt := range tests {
		got, err := ParseLayout(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLayout(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLayout(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestScatterRooms(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		d := NewGenerator(seed).ScatterRooms(context.Background(), 12)

		if len(d.Rooms) != 12 {
			t.Fatalf("seed %d: %d rooms, want 12", seed, len(d.Rooms))
		}
		for i, r := range d.Rooms {
			if r.X1 < 0 || r.X1 >= GridWidth-MaxRoomSize-1 || r.Y1 < 0 || r.Y1 >= GridHeight-MaxRoomSize-1 {
				t.Errorf("seed %d room %d: origin (%d,%d) out of range", seed, i, r.X1, r.Y1)
			}
			if r.Width() < MinRoomSize || r.Width() >= MaxRoomSize || r.Height() < MinRoomSize || r.Height() >= MaxRoomSize {
				t.Errorf("seed %d room %d: size %dx%d", seed, i, r.Width(), r.Height())
			}
			for y := r.Y1 + 1; y <= r.Y2; y++ {
				for x := r.X1 + 1; x <= r.X2; x++ {
					if d.Grid.Get(x, y) != TileFloor {
						t.Fatalf("seed %d room %d: (%d,%d) not carved", seed, i, x, y)
					}
				}
			}
		}

		// Each room is tunnelled to the one before it
		if d.Stats.Tunnels != 2*(len(d.Rooms)-1) {
			t.Errorf("seed %d: tunnels = %d, want %d", seed, d.Stats.Tunnels, 2*(len(d.Rooms)-1))
		}
		sx, sy, _ := d.Spawn()
		reached := floodFloor(d.Grid, sx, sy)
		for i, r := range d.Rooms {
			cx, cy := r.Center()
			if !reached[d.Grid.Index(cx, cy)] {
				t.Errorf("seed %d: room %d unreachable from spawn", seed, i)
			}
		}
	}
}

func TestScatterRoomsEmpty(t *testing.T) {
	d := NewGenerator(4).ScatterRooms(context.Background(), 0)
	if len(d.Rooms) != 0 {
		t.Errorf("got %d rooms, want 0", len(d.Rooms))
	}
	if d.Grid.Count(TileWall) != GridSize {
		t.Error("grid should be all walls")
	}
}

func TestScatterRoomsReproducible(t *testing.T) {
	g := NewGenerator(31)
	d1 := g.ScatterRooms(context.Background(), 10)
	d2 := g.ScatterRooms(context.Background(), 10)
	if *d1.Grid != *d2.Grid {
		t.Error("same seed should scatter the same rooms")
	}
}

func TestGenerateTestMap(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		d := NewGenerator(seed).GenerateTestMap(context.Background())

		if len(d.Rooms) != 0 {
			t.Errorf("seed %d: test map has %d rooms", seed, len(d.Rooms))
		}

		inner := 0
		for i, tile := range d.Grid.Cells() {
			x, y := d.Grid.XY(i)
			edge := x == 0 || y == 0 || x == GridWidth-1 || y == GridHeight-1
			if edge && tile != TileWall {
				t.Fatalf("seed %d: border (%d,%d) is not a wall", seed, x, y)
			}
			if !edge && tile == TileWall {
				inner++
			}
		}
		if inner == 0 || inner > testMapWalls {
			t.Errorf("seed %d: %d inner walls, want 1..%d", seed, inner, testMapWalls)
		}

		if !d.IsPassable(GridWidth/2, GridHeight/2) {
			t.Errorf("seed %d: map center should stay clear", seed)
		}
	}
}

func TestGenerateTestMapReproducible(t *testing.T) {
	d1 := NewGenerator(8).GenerateTestMap(context.Background())
	d2 := NewGenerator(8).GenerateTestMap(context.Background())
	if *d1.Grid != *d2.Grid {
		t.Error("same seed should build the same test map")
	}
}

func TestBuildSelectsLayout(t *testing.T) {
	ctx := context.Background()
	g := NewGenerator(5)

	clustered, err := g.Build(ctx, "", 8)
	if err != nil {
		t.Fatalf("Build(clustered): %v", err)
	}
	direct, err := g.Generate(ctx, 8)
	if err != nil {
		t.Fatal(err)
	}
	if *clustered.Grid != *direct.Grid {
		t.Error("empty layout should run the clustered generator")
	}

	scattered, err := g.Build(ctx, LayoutScatter, 6)
	if err != nil || len(scattered.Rooms) != 6 {
		t.Errorf("Build(scatter) = %d rooms, %v", len(scattered.Rooms), err)
	}

	open, err := g.Build(ctx, LayoutTest, 6)
	if err != nil || len(open.Rooms) != 0 {
		t.Errorf("Build(test) = %d rooms, %v", len(open.Rooms), err)
	}

	if _, err := g.Build(ctx, Layout("maze"), 6); err == nil {
		t.Error("unknown layout should fail")
	}
}
