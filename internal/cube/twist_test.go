package cube

import "testing"

func TestTwistString(t *testing.T) {
	tests := []struct {
		name string
		t    Twist
		want string
	}{
		{"quarter", Twist{Face: R, Direction: Quarter}, "R"},
		{"half", Twist{Face: U, Direction: Half}, "U2"},
		{"inverse quarter", Twist{Face: F, Direction: InverseQuarter}, "F'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTwistInverse(t *testing.T) {
	tests := []struct {
		name string
		in   Twist
		want Twist
	}{
		{"quarter inverts to inverse quarter", Twist{Face: R, Direction: Quarter}, Twist{Face: R, Direction: InverseQuarter}},
		{"half inverts to itself", Twist{Face: U, Direction: Half}, Twist{Face: U, Direction: Half}},
		{"inverse quarter inverts to quarter", Twist{Face: F, Direction: InverseQuarter}, Twist{Face: F, Direction: Quarter}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Inverse(); got != tt.want {
				t.Errorf("Inverse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllTwistsHasEighteenMoves(t *testing.T) {
	if len(AllTwists) != 18 {
		t.Fatalf("len(AllTwists) = %d, want 18", len(AllTwists))
	}
	seen := map[Twist]bool{}
	for _, tw := range AllTwists {
		if seen[tw] {
			t.Fatalf("duplicate twist %v in AllTwists", tw)
		}
		seen[tw] = true
	}
}

func TestG1MovesetHasTenMoves(t *testing.T) {
	if len(G1Moveset) != 10 {
		t.Fatalf("len(G1Moveset) = %d, want 10", len(G1Moveset))
	}
}

func TestMoveAllowed(t *testing.T) {
	tests := []struct {
		name      string
		hasPrev   bool
		prevFace  Face
		candidate Face
		want      bool
	}{
		{"no previous move allows anything", false, U, U, true},
		{"primary face forbids repeating itself", true, U, U, false},
		{"primary face allows its opposite", true, U, D, true},
		{"secondary face forbids repeating itself", true, D, D, false},
		{"secondary face forbids its opposite", true, D, U, false},
		{"secondary face allows unrelated faces", true, D, F, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoveAllowed(tt.hasPrev, tt.prevFace, tt.candidate); got != tt.want {
				t.Errorf("MoveAllowed(%v, %v, %v) = %v, want %v", tt.hasPrev, tt.prevFace, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestParseTwistString(t *testing.T) {
	tests := []struct {
		in      string
		want    Twist
		wantErr bool
	}{
		{"R", Twist{Face: R, Direction: Quarter}, false},
		{"R1", Twist{Face: R, Direction: Quarter}, false},
		{"R2", Twist{Face: R, Direction: Half}, false},
		{"R'", Twist{Face: R, Direction: InverseQuarter}, false},
		{"R3", Twist{Face: R, Direction: InverseQuarter}, false},
		{"R0", Twist{Face: R, Direction: Identity}, false},
		{"", Twist{}, true},
		{"X", Twist{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTwistString(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTwistString(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseTwistString(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
