package model

// PrincipalType distinguishes the two independent identity namespaces. A
// nurse and a patient may share a username; every issued token records which
// table its subject resolves against.
type PrincipalType string

const (
	PrincipalNurse   PrincipalType = "nurse"
	PrincipalPatient PrincipalType = "patient"
)

func (t PrincipalType) Valid() bool {
	return t == PrincipalNurse || t == PrincipalPatient
}
