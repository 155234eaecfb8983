package cardtext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{
			input:    "\n\tMove a minion to another base.\r",
			expected: "Move a minion to another base.",
		},
		{
			input:    "Destroy a minion. FAQ",
			expected: "Destroy a minion.",
		},
		{
			input:    "   padded   ",
			expected: "padded",
		},
		{
			input:    "line one\nline two",
			expected: "line oneline two",
		},
		{
			input:    "",
			expected: "",
		},
	}

	for _, test := range testCases {
		got := CleanText(test.input)
		if got != test.expected {
			t.Fatalf("CleanText(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		text     string
		expected Kind
	}{
		{
			text:     "Robot Walker - power 3 - Move a minion to another base.",
			expected: KindMinion,
		},
		{
			// carries a power token but only two segments, so it is
			// an action, not a minion
			text:     "Laser Blast - Destroy a minion with power 3 or less.",
			expected: KindAction,
		},
		{
			text:     "Commander - powerful leader - Gets power 2 when alone.",
			expected: KindMinion,
		},
		{
			text:     "Tenacious Z - power 2 - Special: you may have this minion on the bottom of your discard pile. FAQ",
			expected: KindMinion,
		},
		{
			text:     "See the full rules reference for details.",
			expected: KindUnknown,
		},
	}

	for _, test := range testCases {
		kind, err := Classify(test.text)
		if test.expected == KindUnknown {
			require.ErrorIs(t, err, ErrUnknownFormat)
			continue
		}
		require.NoError(t, err, test.text)
		require.Equal(t, test.expected, kind, test.text)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	text := "Robot Walker - power 3 - Move a minion to another base."
	first, err := Classify(text)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Classify(text)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestParseMinion(t *testing.T) {
	{
		minion, err := ParseMinion(
			"Robot Walker",
			"Robot Walker - power 3 - Move a minion to another base.",
		)
		if err != nil {
			t.Fatal(err)
		}
		diff := cmp.Diff(Minion{
			Name:        "Robot Walker",
			Power:       3,
			Description: "Move a minion to another base.",
		}, minion)
		if diff != "" {
			t.Fatal(diff)
		}
	}
	{
		// the wiki appends FAQ links to card paragraphs, they must not
		// leak into descriptions
		minion, err := ParseMinion(
			"Tenacious Z",
			"Tenacious Z - power 2 - You may have this minion on the bottom of your discard pile. FAQ",
		)
		if err != nil {
			t.Fatal(err)
		}
		require.Equal(t, "You may have this minion on the bottom of your discard pile.", minion.Description)
	}
	{
		_, err := ParseMinion("Mystery", "Mystery - power X - Does things.")
		require.ErrorIs(t, err, ErrPower)
	}
	{
		// the digits are read after the first "power" occurrence, not
		// the one the classifier matched
		_, err := ParseMinion("Commander", "Commander - powerful leader - Gets power 2 when alone.")
		require.ErrorIs(t, err, ErrPower)
	}
	{
		_, err := ParseMinion("Laser Blast", "Laser Blast - Destroy a minion with power 3 or less.")
		require.ErrorIs(t, err, ErrUnknownFormat)
	}
	{
		_, err := ParseMinion("Blank", "Blank - power 2 -  - leftovers")
		require.ErrorIs(t, err, ErrUnknownFormat)
	}
}

func TestParseAction(t *testing.T) {
	{
		action, err := ParseAction(
			"Laser Blast",
			"Laser Blast - Destroy a minion with power 3 or less.",
		)
		if err != nil {
			t.Fatal(err)
		}
		diff := cmp.Diff(Action{
			Name:        "Laser Blast",
			Description: "Destroy a minion with power 3 or less.",
		}, action)
		if diff != "" {
			t.Fatal(diff)
		}
	}
	{
		// extra segments beyond the description are ignored
		action, err := ParseAction(
			"Dice Roll",
			"Dice Roll - Roll a die. - On 6, draw two cards.",
		)
		if err != nil {
			t.Fatal(err)
		}
		require.Equal(t, "Roll a die.", action.Description)
	}
	{
		_, err := ParseAction("Note", "Note without any separator")
		require.ErrorIs(t, err, ErrUnknownFormat)
	}
	{
		_, err := ParseAction("Blank", "Blank -  - stuff")
		require.ErrorIs(t, err, ErrMissingDescription)
	}
}

func TestRecordValidation(t *testing.T) {
	{
		_, err := NewMinion("Zombie", -1, "Rises again.")
		require.ErrorIs(t, err, ErrPower)
	}
	{
		_, err := NewMinion("", 3, "No name.")
		require.ErrorIs(t, err, ErrMissingName)
	}
	{
		minion, err := NewMinion("Zombie", 0, "Rises again.")
		require.NoError(t, err)
		require.Equal(t, 0, minion.Power)
	}
	{
		_, err := NewAction("   ", "Whitespace name.")
		require.ErrorIs(t, err, ErrMissingName)
	}
}
