package analysis

import "testing"

func TestDetectText(t *testing.T) {
	t.Run("double quoted", func(t *testing.T) {
		if got := DetectText(`The image says "Hello World" quite clearly.`); got != "Hello World" {
			t.Fatalf("detected: %q", got)
		}
	})

	t.Run("single quoted", func(t *testing.T) {
		if got := DetectText("'Dear diary'"); got != "Dear diary" {
			t.Fatalf("detected: %q", got)
		}
	})

	t.Run("first pair wins", func(t *testing.T) {
		if got := DetectText(`"first" and "second"`); got != "first" {
			t.Fatalf("detected: %q", got)
		}
	})

	t.Run("no quotes strips quote characters", func(t *testing.T) {
		if got := DetectText("  Hello World  "); got != "Hello World" {
			t.Fatalf("detected: %q", got)
		}
	})

	t.Run("unpaired quote removed", func(t *testing.T) {
		if got := DetectText(`Hello" World`); got != "Hello World" {
			t.Fatalf("detected: %q", got)
		}
	})
}
