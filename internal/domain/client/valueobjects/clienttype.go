package valueobjects

import "fmt"

// ClientType is immutable after creation; switching requires recreating the client.
type ClientType string

const (
	ClientTypeSoftware ClientType = "software"
	ClientTypeService  ClientType = "service"
)

func NewClientType(s string) (ClientType, error) {
	t := ClientType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid client type: %s", s)
	}
	return t, nil
}

func (t ClientType) IsValid() bool {
	switch t {
	case ClientTypeSoftware, ClientTypeService:
		return true
	default:
		return false
	}
}

func (t ClientType) IsSoftware() bool {
	return t == ClientTypeSoftware
}

func (t ClientType) IsService() bool {
	return t == ClientTypeService
}

func (t ClientType) String() string {
	return string(t)
}
