package parser

import "testing"

func TestClassify_QuestionHeader(t *testing.T) {
	ln := Classify("12. ¿Qué servicio ofrece almacenamiento de objetos?")
	if ln.Kind != KindQuestionHeader {
		t.Fatalf("expected question header, got kind %d", ln.Kind)
	}
	if ln.Number != 12 {
		t.Errorf("expected number 12, got %d", ln.Number)
	}
	if ln.Text != "¿Qué servicio ofrece almacenamiento de objetos?" {
		t.Errorf("unexpected text %q", ln.Text)
	}
}

func TestClassify_HeaderRequiresInvertedQuestionMark(t *testing.T) {
	ln := Classify("12. Qué servicio ofrece almacenamiento de objetos?")
	if ln.Kind == KindQuestionHeader {
		t.Fatal("header without ¿ must not classify as a question")
	}
}

func TestClassify_Option(t *testing.T) {
	ln := Classify("C) Amazon S3 ✅")
	if ln.Kind != KindOption {
		t.Fatalf("expected option, got kind %d", ln.Kind)
	}
	if ln.Letter != "C" {
		t.Errorf("expected letter C, got %q", ln.Letter)
	}
	if ln.Text != "Amazon S3 ✅" {
		t.Errorf("glyph must stay in the text for the collector, got %q", ln.Text)
	}
}

func TestClassify_AnswerMarker(t *testing.T) {
	ln := Classify("✔ Correcta: C) Amazon S3")
	if ln.Kind != KindAnswerMarker {
		t.Fatalf("expected answer marker, got kind %d", ln.Kind)
	}
	if ln.Text != "C) Amazon S3" {
		t.Errorf("unexpected marker remainder %q", ln.Text)
	}
}

func TestClassify_NoiseKinds(t *testing.T) {
	cases := []struct {
		line string
		kind Kind
	}{
		{"", KindBlank},
		{"   ", KindBlank},
		{"❌ B es incorrecta porque...", KindNote},
		{"✔ revisado", KindNote},
		{"📌 Sección de repaso", KindSectionMarker},
		{"### Tema 2", KindSectionMarker},
		{"2.3. Almacenamiento", KindSectionMarker},
		{"---", KindDivider},
		{"texto suelto", KindPlain},
		{"1.5 GB de datos por día", KindPlain},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			if got := Classify(tc.line).Kind; got != tc.kind {
				t.Errorf("Classify(%q) kind = %d, want %d", tc.line, got, tc.kind)
			}
		})
	}
}

func TestCursor(t *testing.T) {
	c := NewCursor([]string{"a", "b"})

	if line, ok := c.Peek(); !ok || line != "a" {
		t.Fatalf("Peek = %q, %v", line, ok)
	}
	if c.Pos() != 0 {
		t.Fatalf("Peek must not advance, pos = %d", c.Pos())
	}

	for _, want := range []string{"a", "b"} {
		line, ok := c.Next()
		if !ok || line != want {
			t.Fatalf("Next = %q, %v, want %q", line, ok, want)
		}
	}
	if _, ok := c.Next(); ok {
		t.Fatal("Next past the end must report exhaustion")
	}
}
