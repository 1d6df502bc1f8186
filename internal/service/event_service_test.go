package service

import (
	"testing"
	"time"

	"github.com/simoamogit/student-tracker/internal/model"
)

func TestEventDatesAfterUpdate(t *testing.T) {
	start := time.Date(2026, time.April, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	current := &model.Event{StartDate: start, EndDate: end}

	t.Run("NoDateFieldsKeepsStored", func(t *testing.T) {
		gotStart, gotEnd := eventDatesAfterUpdate(current, model.UpdateEventRequest{})
		if !gotStart.Equal(start) || !gotEnd.Equal(end) {
			t.Errorf("got (%s, %s), want stored pair", gotStart, gotEnd)
		}
		if gotEnd.Before(gotStart) {
			t.Error("stored pair reported as inverted")
		}
	})

	t.Run("EndMovedBeforeStoredStart", func(t *testing.T) {
		bad := start.Add(-24 * time.Hour)
		gotStart, gotEnd := eventDatesAfterUpdate(current, model.UpdateEventRequest{EndDate: &bad})
		if !gotEnd.Before(gotStart) {
			t.Error("expected inverted pair when end_date moves before the stored start")
		}
	})

	t.Run("StartMovedPastStoredEnd", func(t *testing.T) {
		bad := end.Add(24 * time.Hour)
		gotStart, gotEnd := eventDatesAfterUpdate(current, model.UpdateEventRequest{StartDate: &bad})
		if !gotEnd.Before(gotStart) {
			t.Error("expected inverted pair when start_date moves past the stored end")
		}
	})

	t.Run("BothReplacedValid", func(t *testing.T) {
		newStart := end.Add(24 * time.Hour)
		newEnd := newStart.Add(time.Hour)
		gotStart, gotEnd := eventDatesAfterUpdate(current, model.UpdateEventRequest{StartDate: &newStart, EndDate: &newEnd})
		if !gotStart.Equal(newStart) || !gotEnd.Equal(newEnd) {
			t.Errorf("got (%s, %s), want replaced pair", gotStart, gotEnd)
		}
	})

	t.Run("EqualDatesNotInverted", func(t *testing.T) {
		same := start
		gotStart, gotEnd := eventDatesAfterUpdate(current, model.UpdateEventRequest{EndDate: &same})
		if gotEnd.Before(gotStart) {
			t.Error("end_date equal to start_date must be allowed")
		}
	})
}
