package prompt

import "testing"

func TestScripted(t *testing.T) {
	t.Run("confirms consumed in order", func(t *testing.T) {
		s := &Scripted{Confirms: []bool{true, false}}

		first, err := s.Confirm("first?", false)
		if err != nil || !first {
			t.Errorf("expected scripted true, got %v (err=%v)", first, err)
		}

		second, err := s.Confirm("second?", true)
		if err != nil || second {
			t.Errorf("expected scripted false, got %v (err=%v)", second, err)
		}
	})

	t.Run("exhausted confirms return the fallback", func(t *testing.T) {
		s := &Scripted{}

		answer, err := s.Confirm("anything?", true)
		if err != nil || !answer {
			t.Errorf("expected fallback true, got %v (err=%v)", answer, err)
		}

		answer, err = s.Confirm("anything?", false)
		if err != nil || answer {
			t.Errorf("expected fallback false, got %v (err=%v)", answer, err)
		}
	})

	t.Run("select matches a scripted choice", func(t *testing.T) {
		s := &Scripted{Selects: []string{"public"}}

		choice, err := s.SelectOne("privacy", []string{"private", "public"})
		if err != nil {
			t.Fatalf("select failed: %v", err)
		}
		if choice != "public" {
			t.Errorf("expected public, got %q", choice)
		}
	})

	t.Run("scripted answer outside the choices errors", func(t *testing.T) {
		s := &Scripted{Selects: []string{"friends"}}

		if _, err := s.SelectOne("privacy", []string{"private", "public"}); err == nil {
			t.Error("expected an error for an answer not among the choices")
		}
	})

	t.Run("exhausted selects default to the first choice", func(t *testing.T) {
		s := &Scripted{}

		choice, err := s.SelectOne("privacy", []string{"private", "public"})
		if err != nil {
			t.Fatalf("select failed: %v", err)
		}
		if choice != "private" {
			t.Errorf("expected the first choice, got %q", choice)
		}
	})

	t.Run("select with no choices errors", func(t *testing.T) {
		s := &Scripted{}

		if _, err := s.SelectOne("pick", nil); err == nil {
			t.Error("expected an error when no choices are offered")
		}
	})

	t.Run("free text consumed in order then errors", func(t *testing.T) {
		s := &Scripted{Texts: []string{"Inception", "done"}}

		first, err := s.FreeText("Title 1:")
		if err != nil || first != "Inception" {
			t.Errorf("expected Inception, got %q (err=%v)", first, err)
		}

		second, err := s.FreeText("Title 2:")
		if err != nil || second != "done" {
			t.Errorf("expected done, got %q (err=%v)", second, err)
		}

		if _, err := s.FreeText("Title 3:"); err == nil {
			t.Error("expected an error once the script is exhausted")
		}
	})
}
