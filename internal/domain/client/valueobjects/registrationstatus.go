package valueobjects

// RegistrationStatus tracks the outcome of the external software registration
// attempted during client creation. It is informational only: a failed
// registration never blocks local creation.
type RegistrationStatus string

const (
	RegistrationPending       RegistrationStatus = "pending"
	RegistrationSuccess       RegistrationStatus = "success"
	RegistrationFailed        RegistrationStatus = "failed"
	RegistrationSkipped       RegistrationStatus = "skipped"
	RegistrationAlreadyExists RegistrationStatus = "already_exists"
)

func (s RegistrationStatus) IsValid() bool {
	switch s {
	case RegistrationPending, RegistrationSuccess, RegistrationFailed,
		RegistrationSkipped, RegistrationAlreadyExists:
		return true
	default:
		return false
	}
}

func (s RegistrationStatus) String() string {
	return string(s)
}

// ClientSource records where the authoritative account lives.
type ClientSource string

const (
	SourceInternal ClientSource = "internal"
	SourceExternal ClientSource = "external"
)

func (s ClientSource) IsValid() bool {
	return s == SourceInternal || s == SourceExternal
}

func (s ClientSource) IsExternal() bool {
	return s == SourceExternal
}

func (s ClientSource) String() string {
	return string(s)
}
