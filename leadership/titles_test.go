package leadership

import "testing"

func TestIsLeadershipTitle(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"CEO", true},
		{"Chief Executive Officer", true},
		{"CEO at Acme Corp", true},
		{"Co-Founder", true},
		{"VP of Engineering", true},
		{"Vice President of Sales", true},
		{"Chief Data Officer", true}, // generic chief-X-officer pattern
		{"Software Engineer", false},
		{"Senior Account Manager", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := IsLeadershipTitle(tt.title); got != tt.want {
				t.Errorf("IsLeadershipTitle(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestExtractLeadershipTitle(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantTitle string
		wantFound bool
	}{
		{"embedded title", "Jane Doe, Chief Executive Officer of Acme", "Chief Executive Officer", true},
		{"short form", "John is the CTO here", "CTO", true},
		{"longest form preferred", "VP of Engineering at Acme", "VP of Engineering", true},
		{"generic chief officer", "Sam Lee, Chief Design Officer", "Chief Design Officer", true},
		{"no title", "Jane Doe writes documentation", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, found := ExtractLeadershipTitle(tt.text)
			if found != tt.wantFound || title != tt.wantTitle {
				t.Errorf("ExtractLeadershipTitle(%q) = (%q, %v), want (%q, %v)",
					tt.text, title, found, tt.wantTitle, tt.wantFound)
			}
		})
	}
}

func TestExtractLeadershipTitle_EqualLengthTieBreak(t *testing.T) {
	// Equal-length titles resolve in table order: CTO before COO, COO
	// before CFO, regardless of where each appears in the text.
	tests := []struct {
		text string
		want string
	}{
		{"She served as COO and CTO", "CTO"},
		{"the CFO reports to the COO", "COO"},
	}

	for _, tt := range tests {
		title, found := ExtractLeadershipTitle(tt.text)
		if !found || title != tt.want {
			t.Errorf("ExtractLeadershipTitle(%q) = (%q, %v), want (%q, true)",
				tt.text, title, found, tt.want)
		}
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Chief Executive Officer", "CEO"},
		{"chief technology officer", "CTO"},
		{"ceo", "CEO"},
		{"Cfo", "CFO"},
		{"cofounder", "Co-Founder"},
		{"co founder", "Co-Founder"},
		{"managing director", "Managing Director"},
		{"Random Title", "Random Title"},
		{"  CEO  ", "CEO"},
	}

	for _, tt := range tests {
		if got := NormalizeTitle(tt.in); got != tt.want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRankTitle(t *testing.T) {
	tests := []struct {
		title string
		want  int
	}{
		{"CEO", 1},
		{"founder", 1},
		{"President", 2},
		{"CTO", 3},
		{"Chief Design Officer", 4}, // generic pattern
		{"VP of Sales", 5},          // generic VP pattern
		{"Software Engineer", 99},
	}

	for _, tt := range tests {
		if got := RankTitle(tt.title); got != tt.want {
			t.Errorf("RankTitle(%q) = %d, want %d", tt.title, got, tt.want)
		}
	}
}

func TestRankTitle_OrdersBySeniority(t *testing.T) {
	if RankTitle("CEO") >= RankTitle("CTO") {
		t.Error("CEO should outrank CTO")
	}
	if RankTitle("CTO") >= RankTitle("vice president") {
		t.Error("CTO should outrank VP")
	}
}

func TestClassifyRole(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"CEO", RoleCEO},
		{"Chief Executive Officer", RoleCEO},
		{"Founder", RoleFounder},
		{"co-founder", RoleCoFounder},
		{"CTO", RoleCTO},
		{"COO", RoleCOO},
		{"President", RolePresident},
		{"CFO", RoleCFO},
		{"Chief Revenue Officer", RoleOtherExecutive},
		{"VP of Product", RoleOtherExecutive},
		{"Staff Engineer", RoleOther},
	}

	for _, tt := range tests {
		if got := ClassifyRole(tt.title); got != tt.want {
			t.Errorf("ClassifyRole(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
