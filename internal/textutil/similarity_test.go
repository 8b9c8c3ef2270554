package textutil

import "testing"

func TestSimilarityRatioIdentical(t *testing.T) {
	if got := SimilarityRatio("minterellison", "minterellison"); got != 100 {
		t.Errorf("SimilarityRatio(identical) = %v, want 100", got)
	}
}

func TestSimilarityRatioCloseMisspelling(t *testing.T) {
	got := SimilarityRatio("ashurst", "ashursts")
	if got < 80 {
		t.Errorf("SimilarityRatio(near miss) = %v, want >= 80", got)
	}
}

func TestSimilarityRatioUnrelated(t *testing.T) {
	got := SimilarityRatio("allens", "whirlpool")
	if got >= 50 {
		t.Errorf("SimilarityRatio(unrelated) = %v, want < 50", got)
	}
}

func TestSimilarityRatioEmpty(t *testing.T) {
	if got := SimilarityRatio("", ""); got != 100 {
		t.Errorf("SimilarityRatio(empty, empty) = %v, want 100", got)
	}
	if got := SimilarityRatio("allens", ""); got != 0 {
		t.Errorf("SimilarityRatio(word, empty) = %v, want 0", got)
	}
}

func TestSimilarityRatioSymmetric(t *testing.T) {
	ab := SimilarityRatio("corrs chambers", "corrs chamber")
	ba := SimilarityRatio("corrs chamber", "corrs chambers")
	if ab != ba {
		t.Errorf("SimilarityRatio not symmetric: %v vs %v", ab, ba)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Allens", "allens"},
		{"ampersand", "Hall & Wilcox", "hall-and-wilcox"},
		{"plus", "Gilbert + Tobin", "gilbert-tobin"},
		{"spaces", "Herbert Smith Freehills", "herbert-smith-freehills"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.input); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
