package golden

import "fmt"

// Diff describes one case whose current output drifted from the baseline.
// Missing and unexpected records are reported as drift too, so a baseline
// and a suite that disagree about coverage never silently pass.
type Diff struct {
	Record     Record
	GotMessage string
	GotStatus  int
	Missing    bool // in the baseline, absent from the current run
	Unexpected bool // in the current run, absent from the baseline
}

func (d Diff) String() string {
	key := fmt.Sprintf("%s seed=%d", d.Record.Fixture, d.Record.Seed)
	if d.Record.Text != "" {
		key += fmt.Sprintf(" text=%q", d.Record.Text)
	}
	switch {
	case d.Missing:
		return fmt.Sprintf("%s: in baseline but not in current run", key)
	case d.Unexpected:
		return fmt.Sprintf("%s: in current run but not in baseline", key)
	default:
		return fmt.Sprintf("%s: baseline (%q, %d) != current (%q, %d)",
			key, d.Record.Message, d.Record.Status, d.GotMessage, d.GotStatus)
	}
}

type recordKey struct {
	fixture string
	text    string
	seed    int32
}

// Verify compares a current capture against a baseline and returns a diff
// per drifted case. An empty result means the golden outputs still hold.
func Verify(baseline, current *Baseline) []Diff {
	got := make(map[recordKey]Record, len(current.Records))
	for _, r := range current.Records {
		got[recordKey{r.Fixture, r.Text, r.Seed}] = r
	}

	var diffs []Diff
	seen := make(map[recordKey]bool, len(baseline.Records))
	for _, want := range baseline.Records {
		key := recordKey{want.Fixture, want.Text, want.Seed}
		seen[key] = true

		cur, ok := got[key]
		if !ok {
			diffs = append(diffs, Diff{Record: want, Missing: true})
			continue
		}
		if cur.Message != want.Message || cur.Status != want.Status {
			diffs = append(diffs, Diff{
				Record:     want,
				GotMessage: cur.Message,
				GotStatus:  cur.Status,
			})
		}
	}

	for _, r := range current.Records {
		if !seen[recordKey{r.Fixture, r.Text, r.Seed}] {
			diffs = append(diffs, Diff{Record: r, Unexpected: true})
		}
	}
	return diffs
}
