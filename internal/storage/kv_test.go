package storage

import "testing"

func TestKeyedValueMissing(t *testing.T) {
	store := openTestStore(t)

	v, err := store.KeyedValue("capyDinoHiScore")
	if err != nil {
		t.Fatalf("KeyedValue() failed: %v", err)
	}
	if v != 0 {
		t.Errorf("missing key should read as 0, got %d", v)
	}
}

func TestRaiseKeyedValueNeverLowers(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		write int
		want  int
	}{
		{120, 120},
		{80, 120},
		{120, 120},
		{121, 121},
	}
	for _, s := range steps {
		got, err := store.RaiseKeyedValue("hi", s.write)
		if err != nil {
			t.Fatalf("RaiseKeyedValue(%d) failed: %v", s.write, err)
		}
		if got != s.want {
			t.Errorf("after writing %d: value = %d, expected %d", s.write, got, s.want)
		}
	}

	if v, _ := store.KeyedValue("other"); v != 0 {
		t.Errorf("keys must be independent, got %d", v)
	}
}

func TestHighScoreSlot(t *testing.T) {
	store := openTestStore(t)
	slot := store.HighScoreSlot("capyDinoHiScore")

	if err := slot.SaveHighScore(42); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if err := slot.SaveHighScore(7); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	got, err := store.HighScoreSlot("capyDinoHiScore").LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if got != 42 {
		t.Errorf("high score = %d, expected 42", got)
	}
}
