package advice

import (
	"strings"
	"testing"
)

func TestListDocs(t *testing.T) {
	docs, err := ListDocs()
	if err != nil {
		t.Fatalf("ListDocs: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("len(docs) = %d, want 3", len(docs))
	}
	if docs[0].ID != "ADV001" {
		t.Errorf("first doc = %q, want ADV001", docs[0].ID)
	}
	for _, d := range docs {
		if d.Name == "" || d.Description == "" {
			t.Errorf("doc %s missing metadata: %+v", d.ID, d)
		}
	}
}

// Every proficiency tier in the catalog has a matching embedded doc.
func TestDocs_CoverCatalogTiers(t *testing.T) {
	docs, err := ListDocs()
	if err != nil {
		t.Fatalf("ListDocs: %v", err)
	}

	names := make(map[string]bool, len(docs))
	for _, d := range docs {
		names[d.Name] = true
	}
	for tier := range catalog.Proficiency {
		if !names[tier] {
			t.Errorf("no doc for catalog tier %q", tier)
		}
	}
}

func TestLookupDoc(t *testing.T) {
	content, err := LookupDoc("adv002")
	if err != nil {
		t.Fatalf("LookupDoc(adv002): %v", err)
	}
	if !strings.Contains(content, "intermediate") {
		t.Errorf("ADV002 content does not mention its tier")
	}

	byName, err := LookupDoc("intermediate")
	if err != nil {
		t.Fatalf("LookupDoc(intermediate): %v", err)
	}
	if byName != content {
		t.Error("lookup by name and by ID returned different docs")
	}

	if _, err := LookupDoc("expert"); err == nil {
		t.Fatal("expected error for unknown tier")
	}
}
