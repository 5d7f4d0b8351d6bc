package models

import "bytes"

// UserProfile is the display data and public key a principal publishes.
type UserProfile struct {
	FirstName string
	LastName  string
	PublicKey []byte
}

// Clone returns a copy of p that shares no memory with it.
func (p UserProfile) Clone() UserProfile {
	p.PublicKey = bytes.Clone(p.PublicKey)
	return p
}

// UserData is a profile together with the principal that owns it.
type UserData struct {
	Profile   UserProfile
	Principal Principal
}
