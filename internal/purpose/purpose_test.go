package purpose

import (
	"reflect"
	"testing"
)

func TestResolve_KnownPurposes(t *testing.T) {
	for _, tag := range []string{"personal", "team", "business", "policy"} {
		p := Resolve(tag)
		if string(p.Purpose) != tag {
			t.Fatalf("Resolve(%q) returned profile %q", tag, p.Purpose)
		}
		if len(p.Layers) != 5 || len(p.Descriptions) != 5 {
			t.Fatalf("%s: expected 5 layers and 5 descriptions, got %d/%d", tag, len(p.Layers), len(p.Descriptions))
		}
		if p.Role == "" || p.Context == "" || p.Framework == "" {
			t.Fatalf("%s: profile has empty role/context/framework", tag)
		}
	}
}

func TestResolve_UnknownFallsBackToPersonal(t *testing.T) {
	personal := Resolve("personal")
	for _, tag := range []string{"", "finance", "unknown", "   "} {
		if got := Resolve(tag); !reflect.DeepEqual(got, personal) {
			t.Fatalf("Resolve(%q) did not fall back to personal", tag)
		}
	}
}

func TestResolve_TrimsAndLowercases(t *testing.T) {
	if Resolve("  Team ").Purpose != Team {
		t.Fatalf("expected trimmed/lowercased tag to resolve to team")
	}
}

func TestAll_ReturnsFourProfiles(t *testing.T) {
	all := All()
	if len(all) != 4 {
		t.Fatalf("expected 4 profiles, got %d", len(all))
	}
}
