package xer

import (
	"testing"

	"github.com/alexanderramin/xerplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStatus(t *testing.T) {
	cases := map[string]domain.ActivityStatus{
		"TK_Complete": domain.ActivityCompleted,
		"TK_Active":   domain.ActivityInProgress,
		"TK_NotStart": domain.ActivityNotStarted,
		"":            domain.ActivityNotStarted,
		"tk_active":   domain.ActivityNotStarted,
		"garbage":     domain.ActivityNotStarted,
	}
	for in, want := range cases {
		assert.Equal(t, want, MapStatus(in), "status %q", in)
	}
}

func TestMapRelationType(t *testing.T) {
	cases := map[string]domain.RelationType{
		"PR_FS": domain.RelationFinishStart,
		"PR_SS": domain.RelationStartStart,
		"PR_FF": domain.RelationFinishFinish,
		"PR_SF": domain.RelationStartFinish,
		"":      domain.RelationFinishStart,
		"PR_XX": domain.RelationFinishStart,
	}
	for in, want := range cases {
		assert.Equal(t, want, MapRelationType(in), "pred_type %q", in)
	}
}

func TestIsKnownPredType(t *testing.T) {
	for _, code := range []string{"PR_FS", "PR_SS", "PR_FF", "PR_SF"} {
		assert.True(t, IsKnownPredType(code), code)
	}
	assert.False(t, IsKnownPredType("PR_XX"))
	assert.False(t, IsKnownPredType(""))
}

func TestIsCriticalActivity_Boundary(t *testing.T) {
	assert.True(t, IsCriticalActivity(ptrFloat(0)))
	assert.True(t, IsCriticalActivity(ptrFloat(-40)))
	assert.False(t, IsCriticalActivity(ptrFloat(0.01)))
	assert.False(t, IsCriticalActivity(nil))
}

func TestHoursToWorkdays(t *testing.T) {
	assert.Nil(t, HoursToWorkdays(nil, 8))

	got := HoursToWorkdays(ptrFloat(40), 8)
	require.NotNil(t, got)
	assert.Equal(t, 5.0, *got)

	got = HoursToWorkdays(ptrFloat(30), 10)
	require.NotNil(t, got)
	assert.Equal(t, 3.0, *got)

	got = HoursToWorkdays(ptrFloat(16), 0)
	require.NotNil(t, got)
	assert.Equal(t, 2.0, *got, "non-positive hours per day falls back to 8")
}
