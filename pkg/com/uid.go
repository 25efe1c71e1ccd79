package com

import "github.com/gofrs/uuid"

// Uid is a connection id, unique per transport session.
type Uid string

const NilUid Uid = ""

func NewUid() Uid { return Uid(uuid.Must(uuid.NewV4()).String()) }

func (u Uid) IsEmpty() bool  { return u == NilUid }
func (u Uid) String() string { return string(u) }

// Short is the id for the logs, i.e. 4f2...9c1.
func (u Uid) Short() string {
	if len(u) < 6 {
		return string(u)
	}
	return string(u[:3]) + "." + string(u[len(u)-3:])
}
