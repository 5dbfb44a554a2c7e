package domain

type ProfileName string

const DefaultProfileName ProfileName = "default"

// Profile stores the project credential triple for one application, with
// secret material kept behind secret store references.
type Profile struct {
	Name           ProfileName
	ProjectID      string
	AppUUID        string
	ClientKeyRef   string
	OwnerKeyRef    string
	OwnerAddress   string
	ActivityViewer string
}
