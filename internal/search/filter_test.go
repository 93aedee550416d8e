package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilter_NoTermsIsIdentity(t *testing.T) {
	paths := []string{"zeta.svg", "Alpha.svg", "mid/x.svg"}

	for _, terms := range [][]string{nil, {}} {
		got := Filter(paths, terms)
		if diff := cmp.Diff(paths, got); diff != "" {
			t.Errorf("Filter(%v) mismatch (-want +got):\n%s", terms, diff)
		}
	}
}

func TestFilter_AnyTermPreservesOrder(t *testing.T) {
	paths := []string{"storage/blob-1.svg", "network/vnet.svg", "compute/vm.svg"}

	got := Filter(paths, []string{"blob", "network"})

	want := []string{"storage/blob-1.svg", "network/vnet.svg"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	paths := []string{"networking/Virtual_Networks.svg", "compute/Virtual_Machine.svg", "storage/Storage_Accounts.svg"}

	got := Filter(paths, []string{"VIRTUAL_net"})

	want := []string{"networking/Virtual_Networks.svg"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_LowercasesWithoutFolding(t *testing.T) {
	paths := []string{"misc/Straße.svg", "misc/GRASS.svg"}

	got := Filter(paths, []string{"ss"})
	want := []string{"misc/GRASS.svg"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}

	got = Filter(paths, []string{"STRASSE", "straSSe"})
	if len(got) != 0 {
		t.Errorf("Expected no matches for folded spelling, got %v", got)
	}

	got = Filter(paths, []string{"STRAßE"})
	want = []string{"misc/Straße.svg"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_NoMatches(t *testing.T) {
	got := Filter([]string{"a.svg", "b.svg"}, []string{"kubernetes"})
	if len(got) != 0 {
		t.Errorf("Expected no matches, got %v", got)
	}
}

func TestFilter_PathMatchedOnce(t *testing.T) {
	got := Filter([]string{"storage/blob_storage.svg"}, []string{"blob", "storage"})
	if len(got) != 1 {
		t.Errorf("Expected a single match, got %v", got)
	}
}

func TestCleanTerms(t *testing.T) {
	got := CleanTerms([]string{" blob ", "", "   ", "vnet"})

	want := []string{"blob", "vnet"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CleanTerms mismatch (-want +got):\n%s", diff)
	}
}
