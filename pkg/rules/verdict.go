package rules

// Status is the outcome class of one recommendation check.
type Status int

const (
	// StatusPass means the configuration follows the recommendation.
	StatusPass Status = iota
	// StatusFail means it does not.
	StatusFail
)

func (s Status) String() string {
	if s == StatusPass {
		return "pass"
	}
	return "fail"
}

// MarshalText serializes the status as "pass" or "fail" so JSON reports
// stay readable.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	if string(text) == "pass" {
		*s = StatusPass
	} else {
		*s = StatusFail
	}
	return nil
}

// Verdict is the immutable result of evaluating one rule. Detail carries
// optional context for a pass (e.g. remaining license count); Offenders
// names the objects violating a failed rule, when identifiable.
type Verdict struct {
	Status    Status   `json:"status"`
	Detail    string   `json:"detail,omitempty"`
	Offenders []string `json:"offenders,omitempty"`
}

// Pass returns a plain passing verdict.
func Pass() Verdict { return Verdict{Status: StatusPass} }

// PassDetail returns a passing verdict with context.
func PassDetail(detail string) Verdict {
	return Verdict{Status: StatusPass, Detail: detail}
}

// Fail returns a plain failing verdict.
func Fail() Verdict { return Verdict{Status: StatusFail} }

// FailOffenders returns a failing verdict naming the violating objects.
func FailOffenders(names []string) Verdict {
	return Verdict{Status: StatusFail, Offenders: names}
}
