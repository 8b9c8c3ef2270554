package insights

import (
	"bytes"
	"strings"
	"testing"
)

func TestClassifyPay(t *testing.T) {
	c := NewClassifier()
	result := c.Classify("Salary was $85,000 plus super with a small bonus after admission.")
	if result.Primary != CategoryPayBenefits {
		t.Errorf("primary = %q, want %q", result.Primary, CategoryPayBenefits)
	}
	found := false
	for _, slug := range result.Categories {
		if slug == CategoryPayBenefits {
			found = true
		}
	}
	if !found {
		t.Errorf("pay_benefits missing from %v", result.Categories)
	}
}

func TestClassifyTimeline(t *testing.T) {
	c := NewClassifier()
	result := c.Classify("Applications open in March 2025 and the deadline is 14/04/2025.")
	if result.Primary != CategoryApplicationTimeline {
		t.Errorf("primary = %q, want %q", result.Primary, CategoryApplicationTimeline)
	}
}

func TestClassifyTopKCap(t *testing.T) {
	c := NewClassifier()
	text := "Applications close March 2025. The salary is $80k. We did 3 rotations " +
		"with a mentor and good training. Hours were long, 60+ hours some weeks, " +
		"billable target of 1400. Culture was supportive. Offer accepted."
	result := c.Classify(text)
	if len(result.Categories) > 3 {
		t.Errorf("kept %d categories, want at most 3", len(result.Categories))
	}
	if len(result.Ranked) <= 3 {
		t.Errorf("ranked should retain all scored categories, got %d", len(result.Ranked))
	}
}

func TestClassifyEmpty(t *testing.T) {
	c := NewClassifier()
	for _, text := range []string{"", "   ", "zzz qqq xyzzy"} {
		result := c.Classify(text)
		if result.Primary != "" || len(result.Categories) != 0 {
			t.Errorf("Classify(%q) = %+v, want empty result", text, result)
		}
	}
}

func TestClassifyDeterministicTieBreak(t *testing.T) {
	c := NewClassifier()
	// One keyword hit each: culture_environment and training_support tie at 1.0.
	text := "the culture and the training"
	for i := 0; i < 10; i++ {
		result := c.Classify(text)
		if result.Primary != CategoryCulture {
			t.Fatalf("primary = %q, want %q (alphabetical tie-break)", result.Primary, CategoryCulture)
		}
	}
}

func TestLabel(t *testing.T) {
	if got := Label(CategoryPayBenefits); got != "Pay & benefits" {
		t.Errorf("Label = %q", got)
	}
	if got := Label("made_up_slug"); got != "Made Up Slug" {
		t.Errorf("fallback label = %q", got)
	}
}

func TestAnnotateCSV(t *testing.T) {
	in := strings.NewReader("firm_name,content\n" +
		"Allens,\"Salary was $85k plus super\"\n" +
		"Ashurst,\n")
	var out bytes.Buffer
	if err := AnnotateCSV(in, &out, NewClassifier()); err != nil {
		t.Fatalf("AnnotateCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), out.String())
	}
	if !strings.HasSuffix(lines[0], "primary_cat,cat_labels") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "pay_benefits") || !strings.Contains(lines[1], "Pay & benefits") {
		t.Errorf("annotated row = %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "Ashurst,,,") {
		t.Errorf("empty content row = %q", lines[2])
	}
}
