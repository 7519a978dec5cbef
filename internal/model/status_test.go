package model

import "testing"

func TestStatusOf(t *testing.T) {
	tests := []struct {
		completed bool
		expected  Status
	}{
		{false, StatusPending},
		{true, StatusCompleted},
	}

	for _, test := range tests {
		result := StatusOf(test.completed)
		if result != test.expected {
			t.Errorf("StatusOf(%v) = %s, expected %s", test.completed, result, test.expected)
		}
	}
}

func TestStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusPending, false},
		{StatusCompleted, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("Status(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestStatus_Toggled(t *testing.T) {
	if StatusPending.Toggled() != StatusCompleted {
		t.Errorf("Pending toggled should be Completed, got %s", StatusPending.Toggled())
	}
	if StatusCompleted.Toggled() != StatusPending {
		t.Errorf("Completed toggled should be Pending, got %s", StatusCompleted.Toggled())
	}
}

func TestStatus_String(t *testing.T) {
	status := StatusCompleted
	expected := "Completed"
	result := status.String()

	if result != expected {
		t.Errorf("Status.String() = %s, expected %s", result, expected)
	}
}
