package donation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestForm() *Form {
	f := NewForm(DefaultRange, DefaultAmount)
	n := 0
	f.newID = func() string {
		n++
		return "rec-" + string(rune('0'+n))
	}
	f.now = func() time.Time { return time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC) }
	return f
}

func TestNewFormDefaults(t *testing.T) {
	f := newTestForm()
	d := f.Draft()
	require.Equal(t, "", d.Name)
	require.Equal(t, "", d.Caption)
	require.Equal(t, "5", d.Amount)
	require.Equal(t, Editing, f.State())
	require.Empty(t, f.History())
}

func TestSettersReplaceOneField(t *testing.T) {
	f := newTestForm()

	f.SetName("Sponge Bob")
	require.Equal(t, Draft{Name: "Sponge Bob", Amount: "5"}, f.Draft())

	f.SetCaption("Have a good time in the bottom of the ocean")
	require.Equal(t, "Sponge Bob", f.Draft().Name)
	require.Equal(t, "Have a good time in the bottom of the ocean", f.Draft().Caption)

	require.True(t, f.SetAmount("234"))
	require.Equal(t, "234", f.Draft().Amount)
	require.Equal(t, 234, f.AmountValue())
}

func TestSetAmountStaysWithinBounds(t *testing.T) {
	f := newTestForm()

	require.True(t, f.SetAmount("5000"))
	require.Equal(t, "1000", f.Draft().Amount)

	require.True(t, f.SetAmount("-3"))
	require.Equal(t, "1", f.Draft().Amount)

	require.True(t, f.SetAmount("99999999999999999999"))
	require.Equal(t, "1000", f.Draft().Amount)

	require.True(t, f.SetAmount("-3"))
	require.False(t, f.SetAmount("lots"))
	require.Equal(t, "1", f.Draft().Amount)

	require.False(t, f.SetAmount(""))
	require.Equal(t, "1", f.Draft().Amount)
}

func TestSubmitResetsAndAppends(t *testing.T) {
	f := newTestForm()
	f.SetName("Sponge Bob")
	f.SetCaption("Have a good time in the bottom of the ocean")
	f.SetAmount("234")

	rec := f.Submit()
	require.Equal(t, "Sponge Bob", rec.DonorName)
	require.Equal(t, "Have a good time in the bottom of the ocean", rec.Caption)
	require.Equal(t, 234, rec.Amount)
	require.Equal(t, "Sponge Bob donated $234", rec.Headline("$"))
	require.NotEmpty(t, rec.ID)

	require.Equal(t, Draft{Amount: "5"}, f.Draft())
	require.Equal(t, Submitted, f.State())

	f.SetName("J")
	require.Equal(t, Editing, f.State())
}

func TestSubmitAccumulates(t *testing.T) {
	f := newTestForm()
	f.SetName("Sponge Bob")
	f.SetCaption("Have a good time in the bottom of the ocean")
	f.SetAmount("234")
	f.Submit()

	f.SetName("Jon Snow")
	f.SetCaption("See you in Winterfell")
	f.SetAmount("12")
	f.Submit()

	hist := f.History()
	require.Len(t, hist, 2)
	require.Equal(t, 2, f.Count())
	require.Equal(t, "Sponge Bob donated $234", hist[0].Headline("$"))
	require.Equal(t, "Jon Snow donated $12", hist[1].Headline("$"))
	require.Equal(t, "See you in Winterfell", hist[1].Caption)
}

func TestSubmitAcceptsEmptyDraft(t *testing.T) {
	f := newTestForm()
	rec := f.Submit()
	require.Equal(t, " donated $5", rec.Headline("$"))
	require.Len(t, f.History(), 1)
}

func TestHistoryIsACopy(t *testing.T) {
	f := newTestForm()
	f.SetName("A")
	f.Submit()

	hist := f.History()
	hist[0].DonorName = "mutated"
	require.Equal(t, "A", f.History()[0].DonorName)
}

func TestSnapshotDoesNotMutate(t *testing.T) {
	f := newTestForm()
	f.SetName("Jon Snow")
	rec := f.Snapshot()
	require.Equal(t, "Jon Snow", rec.DonorName)
	require.Equal(t, "Jon Snow", f.Draft().Name)
	require.Empty(t, f.History())
}

func TestNewFormClampsDefault(t *testing.T) {
	f := NewForm(Range{Min: 10, Max: 50, Step: 5}, 5)
	require.Equal(t, "10", f.Draft().Amount)

	f = NewForm(Range{Min: 10, Max: 5, Step: 0}, 5)
	require.Equal(t, DefaultRange, f.Bounds())
}
