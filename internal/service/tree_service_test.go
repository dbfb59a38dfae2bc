package service

import (
	"context"
	"testing"

	"github.com/ajrivet/tassel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotByCode(t *testing.T, ov *TreeOverview, slotCode string) SlotOverview {
	t.Helper()
	for _, sem := range ov.Semesters {
		for _, s := range sem.Slots {
			if s.SlotCode == slotCode {
				return s
			}
		}
	}
	t.Fatalf("slot %q not in overview", slotCode)
	return SlotOverview{}
}

func TestOverview_FreshProgram(t *testing.T) {
	e := newEnv(t)
	ov, err := e.tree.Overview(context.Background(), "CS")
	require.NoError(t, err)

	assert.Equal(t, 92, ov.TotalCredits)
	assert.Equal(t, 0, ov.CompletedCredits)
	assert.Equal(t, 0.0, ov.ProgressPercent)

	assert.Equal(t, domain.SlotNotStarted, slotByCode(t, ov, "CIS*1500").State)
	assert.Equal(t, domain.SlotUnresolved, slotByCode(t, ov, "ELECTIVE_CS_S5").State)
}

func TestMarkCompleted_MovesOutOfCurrent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.tree.MarkCurrent(ctx, "CS", "CIS*1500"))
	require.NoError(t, e.tree.MarkCompleted(ctx, "CS", "CIS*1500"))

	st, err := e.progressRepo.Load(ctx, "CS")
	require.NoError(t, err)
	assert.True(t, st.Completed["CIS*1500"])
	assert.False(t, st.Current["CIS*1500"])
}

func TestUnmarkCompleted_RoundTripLeavesNeither(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.tree.MarkCompleted(ctx, "CS", "CIS*1500"))
	require.NoError(t, e.tree.UnmarkCompleted(ctx, "CS", "CIS*1500"))

	st, err := e.progressRepo.Load(ctx, "CS")
	require.NoError(t, err)
	assert.False(t, st.Completed["CIS*1500"])
	assert.False(t, st.Current["CIS*1500"])
}

func TestSelectElective_FromPool(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.tree.SelectElective(ctx, "CS", "ELECTIVE_CS_S5", "CIS*3090"))

	ov, err := e.tree.Overview(ctx, "CS")
	require.NoError(t, err)
	slot := slotByCode(t, ov, "ELECTIVE_CS_S5")
	assert.Equal(t, domain.SlotNotStarted, slot.State)
	assert.Equal(t, "CIS*3090", slot.Code)
	assert.Equal(t, "Parallel Programming", slot.Name)
}

func TestSelectElective_FromOwnCourses(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	e.addCourse(t, ctx, "ANTH*1150", "Introduction to Anthropology", nil)
	require.NoError(t, e.tree.SelectElective(ctx, "CS", "ELECTIVE_GEN_S4", "ANTH*1150"))

	ov, err := e.tree.Overview(ctx, "CS")
	require.NoError(t, err)
	slot := slotByCode(t, ov, "ELECTIVE_GEN_S4")
	assert.Equal(t, "ANTH*1150", slot.Code)
	assert.Equal(t, 3, slot.Credits, "custom choice inherits the slot's credits")
	assert.Equal(t, "gen_ed", slot.Category)
}

func TestSelectElective_UnknownCourse(t *testing.T) {
	e := newEnv(t)
	err := e.tree.SelectElective(context.Background(), "CS", "ELECTIVE_CS_S5", "NOPE*9999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither in the elective pool")
}

func TestSelectElective_UnknownSlot(t *testing.T) {
	e := newEnv(t)
	err := e.tree.SelectElective(context.Background(), "CS", "ELECTIVE_NOPE", "CIS*3090")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in program")
}

// Re-selecting a slot without clearing first leaves the old course
// completed: the orphaned credits keep counting until ClearElective.
func TestReselectWithoutClear_OrphansCompletedCredit(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.tree.SelectElective(ctx, "CS", "ELECTIVE_CS_S5", "CIS*3090"))
	require.NoError(t, e.tree.MarkCompleted(ctx, "CS", "CIS*3090"))

	ov, err := e.tree.Overview(ctx, "CS")
	require.NoError(t, err)
	require.Equal(t, 3, ov.CompletedCredits)

	require.NoError(t, e.tree.SelectElective(ctx, "CS", "ELECTIVE_CS_S5", "CIS*4030"))

	st, err := e.progressRepo.Load(ctx, "CS")
	require.NoError(t, err)
	assert.True(t, st.Completed["CIS*3090"], "old selection stays completed")

	ov, err = e.tree.Overview(ctx, "CS")
	require.NoError(t, err)
	assert.Equal(t, 3, ov.CompletedCredits, "orphaned credit still counted")
	assert.Equal(t, domain.SlotNotStarted, slotByCode(t, ov, "ELECTIVE_CS_S5").State)
}

func TestClearElective_RemovesOrphan(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.tree.SelectElective(ctx, "CS", "ELECTIVE_CS_S5", "CIS*3090"))
	require.NoError(t, e.tree.MarkCompleted(ctx, "CS", "CIS*3090"))
	require.NoError(t, e.tree.ClearElective(ctx, "CS", "ELECTIVE_CS_S5"))

	ov, err := e.tree.Overview(ctx, "CS")
	require.NoError(t, err)
	assert.Equal(t, 0, ov.CompletedCredits)
	assert.Equal(t, domain.SlotUnresolved, slotByCode(t, ov, "ELECTIVE_CS_S5").State)
}

func TestActivate_SingleTogglesCurrent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.tree.Activate(ctx, "CS", "CIS*1500", domain.ActivationSingle))
	st, err := e.progressRepo.Load(ctx, "CS")
	require.NoError(t, err)
	assert.True(t, st.Current["CIS*1500"])

	require.NoError(t, e.tree.Activate(ctx, "CS", "CIS*1500", domain.ActivationSingle))
	st, err = e.progressRepo.Load(ctx, "CS")
	require.NoError(t, err)
	assert.False(t, st.Current["CIS*1500"])
}

func TestActivate_DoubleTogglesCompleted(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.tree.Activate(ctx, "CS", "CIS*1500", domain.ActivationSingle))
	require.NoError(t, e.tree.Activate(ctx, "CS", "CIS*1500", domain.ActivationDouble))

	st, err := e.progressRepo.Load(ctx, "CS")
	require.NoError(t, err)
	assert.True(t, st.Completed["CIS*1500"])
	assert.False(t, st.Current["CIS*1500"])
}

func TestActivate_SingleOnCompletedIsNoOp(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.tree.MarkCompleted(ctx, "CS", "CIS*1500"))
	require.NoError(t, e.tree.Activate(ctx, "CS", "CIS*1500", domain.ActivationSingle))

	st, err := e.progressRepo.Load(ctx, "CS")
	require.NoError(t, err)
	assert.True(t, st.Completed["CIS*1500"], "still completed")
	assert.False(t, st.Current["CIS*1500"], "completed course cannot become current")
}

func TestOverview_CategoryProgress(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.tree.SelectElective(ctx, "CS", "ELECTIVE_CS_S5", "CIS*3090"))
	require.NoError(t, e.tree.MarkCompleted(ctx, "CS", "CIS*3090"))

	ov, err := e.tree.Overview(ctx, "CS")
	require.NoError(t, err)
	require.Len(t, ov.Categories, 2)
	for _, cat := range ov.Categories {
		if cat.ID == "cs_elective" {
			assert.Equal(t, 3, cat.Completed)
			assert.Equal(t, 12, cat.Required)
		}
	}
}

func TestOverview_FullCompletionHitsTotal(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	program := mustProgram(t, e, "CS")
	for _, sem := range program.Semesters {
		for _, slot := range sem.Slots {
			if rs, ok := slot.(domain.RequiredSlot); ok {
				require.NoError(t, e.tree.MarkCompleted(ctx, "CS", rs.Code))
			}
		}
	}
	// Resolve every elective slot with a distinct pool course.
	selections := map[string]string{
		"ELECTIVE_GEN_S4": "PHIL*1010",
		"ELECTIVE_CS_S5":  "CIS*3090",
		"ELECTIVE_CS_S6":  "CIS*4030",
		"ELECTIVE_GEN_S6": "PSYC*1000",
		"ELECTIVE_CS_S7":  "CIS*4520",
		"ELECTIVE_GEN_S7": "MUSC*1060",
		"ELECTIVE_CS_S8":  "CIS*4720",
		"ELECTIVE_GEN_S8": "ECON*1050",
	}
	for slotID, code := range selections {
		require.NoError(t, e.tree.SelectElective(ctx, "CS", slotID, code))
		require.NoError(t, e.tree.MarkCompleted(ctx, "CS", code))
	}

	ov, err := e.tree.Overview(ctx, "CS")
	require.NoError(t, err)
	assert.Equal(t, ov.TotalCredits, ov.CompletedCredits)
	assert.InDelta(t, 100.0, ov.ProgressPercent, 1e-9)
}

func mustProgram(t *testing.T, e *env, major string) *domain.Program {
	t.Helper()
	p, err := e.cat.Program(major)
	require.NoError(t, err)
	return p
}
