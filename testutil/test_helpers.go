package testutil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// FormatMsgAndArgs formats optional message and arguments for assertion output.
func FormatMsgAndArgs(msgAndArgs ...any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		return fmt.Sprintf("\nMessage: %s", msgAndArgs[0])
	}
	return fmt.Sprintf("\nMessage: %s", fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...))
}

func AssertTrue(t testing.TB, condition bool, msgAndArgs ...any) {
	t.Helper()
	if !condition {
		t.Errorf("Expected condition to be true\n%s", FormatMsgAndArgs(msgAndArgs...))
	}
}

func AssertFalse(t testing.TB, condition bool, msgAndArgs ...any) {
	t.Helper()
	if condition {
		t.Errorf("Expected condition to be false\n%s", FormatMsgAndArgs(msgAndArgs...))
	}
}

func AssertEqual(t testing.TB, expected, actual any, msgAndArgs ...any) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf(
			"Not equal: \nexpected: %v\nactual  : %v\n%s",
			expected,
			actual,
			FormatMsgAndArgs(msgAndArgs...),
		)
	}
}

func AssertNotEqual(t testing.TB, expected, actual any, msgAndArgs ...any) {
	t.Helper()
	if reflect.DeepEqual(expected, actual) {
		t.Errorf(
			"Expected objects to be not equal, but they were:\nvalue: %v\n%s",
			actual,
			FormatMsgAndArgs(msgAndArgs...),
		)
	}
}

func AssertNoError(t testing.TB, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v\n%s", err, FormatMsgAndArgs(msgAndArgs...))
	}
}

func AssertError(t testing.TB, err error, msgAndArgs ...any) {
	t.Helper()
	if err == nil {
		t.Errorf("Expected an error but got nil\n%s", FormatMsgAndArgs(msgAndArgs...))
	}
}

func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...any) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf(
			"Expected error to be %v but got %v\n%s",
			target,
			err,
			FormatMsgAndArgs(msgAndArgs...),
		)
	}
}

func AssertNil(t testing.TB, object any, msgAndArgs ...any) {
	t.Helper()
	if !isNil(object) {
		t.Errorf("Expected value to be nil, but was: %#v\n%s", object, FormatMsgAndArgs(msgAndArgs...))
	}
}

func AssertNotNil(t testing.TB, object any, msgAndArgs ...any) {
	t.Helper()
	if isNil(object) {
		t.Errorf("Expected not nil but got nil\n%s", FormatMsgAndArgs(msgAndArgs...))
	}
}

func AssertLen(t testing.TB, object any, length int, msgAndArgs ...any) {
	t.Helper()
	v := reflect.ValueOf(object)
	if v.Len() != length {
		t.Errorf(
			"Length not equal: \nexpected: %d\nactual  : %d\n%s",
			length,
			v.Len(),
			FormatMsgAndArgs(msgAndArgs...),
		)
	}
}

func AssertContains(t testing.TB, s, substr string, msgAndArgs ...any) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf(
			"Expected string to contain substring:\nstring: %q\nsubstring: %q\n%s",
			s,
			substr,
			FormatMsgAndArgs(msgAndArgs...),
		)
	}
}

// Require helpers fail the test immediately.

func RequireNoError(t testing.TB, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		t.Fatalf("Required no error but got: %v\n%s", err, FormatMsgAndArgs(msgAndArgs...))
	}
}

func RequireError(t testing.TB, err error, msgAndArgs ...any) {
	t.Helper()
	if err == nil {
		t.Fatalf("Required an error but got nil\n%s", FormatMsgAndArgs(msgAndArgs...))
	}
}

func RequireNotNil(t testing.TB, object any, msgAndArgs ...any) {
	t.Helper()
	if isNil(object) {
		t.Fatalf("Required not nil but got nil\n%s", FormatMsgAndArgs(msgAndArgs...))
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
