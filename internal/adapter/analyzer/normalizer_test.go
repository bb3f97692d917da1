package analyzer

import "testing"

func TestNormalizer_Normalize(t *testing.T) {
	n := NewNormalizer(nil)

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"   ", ""},
		{"\t\nword\n", "word"},
		{"Hello", "hello"},
		{"dog.", "dog"},
		{"don't", "dont"},
		{"...!!!???", ""},
		{"(parens)", "parens"},
		{"`code`", "code"},
		{"a|b", "ab"},
		{"x~y^z", "xyz"},
		{"half<full>", "halffull"},
		{"snake_case", "snakecase"},
		{"ＨＥＬＬＯ", "hello"},
		{"１２３", "123"},
		{"ＡＢＣ！", "abc"},
		{"学生。", "学生"},
		{"ÉCOLE", "école"},
	}

	for _, tt := range tests {
		if got := n.Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// Backtick, pipe, tilde and friends are Unicode Symbol category, not
// Punctuation, so only the ignore-set pass removes them. With an empty
// ignore set they must survive the category pass.
func TestNormalizer_IgnorePassIsLoadBearing(t *testing.T) {
	bare := NewNormalizer(map[rune]struct{}{})

	tests := []struct {
		input string
		want  string
	}{
		{"`code`", "`code`"},
		{"a|b", "a|b"},
		{"x~y", "x~y"},
		{"a=b", "a=b"},
	}

	for _, tt := range tests {
		if got := bare.Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) without ignore set = %q, want %q", tt.input, got, tt.want)
		}
	}

	// The default set removes them.
	full := NewNormalizer(nil)
	if got := full.Normalize("`a|b~c`"); got != "abc" {
		t.Errorf("Normalize with default ignore set = %q, want %q", got, "abc")
	}
}
