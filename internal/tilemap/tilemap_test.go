package tilemap

import "testing"

func TestGetOutOfBoundsIsWall(t *testing.T) {
	m := New(30, 20, 32)
	coords := [][2]int{
		{-1, 0}, {0, -1}, {30, 0}, {0, 20},
		{-100, -100}, {1 << 20, 5},
	}
	for _, c := range coords {
		if got := m.Get(c[0], c[1]); got != KindWall {
			t.Fatalf("Get(%d,%d) = %v, want KindWall", c[0], c[1], got)
		}
		if !m.IsSolid(c[0], c[1]) {
			t.Fatalf("IsSolid(%d,%d) = false, want true", c[0], c[1])
		}
	}
}

func TestSetOutOfBoundsIsNoOp(t *testing.T) {
	m := New(4, 4, 32)
	m.Set(-1, 0, KindStreet)
	m.Set(4, 0, KindStreet)
	m.Set(0, -1, KindStreet)
	m.Set(0, 4, KindStreet)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if m.Get(x, y) != KindEmpty {
				t.Fatalf("tile (%d,%d) mutated by out-of-bounds Set", x, y)
			}
		}
	}
}

func TestSolidAndDoorSets(t *testing.T) {
	solid := []Kind{KindWall, KindHouse, KindChurch, KindGrave, KindTree, KindTrashCan}
	passable := []Kind{KindEmpty, KindStreet, KindDoor, KindChurchDoor, KindCemeteryGate}
	doors := []Kind{KindDoor, KindChurchDoor, KindCemeteryGate}

	m := New(1, 1, 32)
	for _, k := range solid {
		m.Set(0, 0, k)
		if !m.IsSolid(0, 0) {
			t.Fatalf("kind %v should be solid", k)
		}
	}
	for _, k := range passable {
		m.Set(0, 0, k)
		if m.IsSolid(0, 0) {
			t.Fatalf("kind %v should not be solid", k)
		}
	}
	for _, k := range doors {
		m.Set(0, 0, k)
		if !m.IsDoor(0, 0) {
			t.Fatalf("kind %v should be a door", k)
		}
	}
	m.Set(0, 0, KindStreet)
	if m.IsDoor(0, 0) {
		t.Fatal("street should not be a door")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	m := New(8, 8, 32)
	m.Set(3, 5, KindChurch)
	if got := m.Get(3, 5); got != KindChurch {
		t.Fatalf("Get(3,5) = %v, want KindChurch", got)
	}
}
