package model

// ServiceDefinition is an entry of the service catalog. Only the links are used.
type ServiceDefinition struct {
	Name  string
	Links []ServiceLink
}

type ServiceLink struct {
	Name string
	Type string
	URL  string
}

// LastLinkURL returns the URL of the last link, which is the repository link by convention
func (x *ServiceDefinition) LastLinkURL() (string, bool) {
	if len(x.Links) == 0 {
		return "", false
	}
	return x.Links[len(x.Links)-1].URL, true
}
