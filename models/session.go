package models

// DeviceSession is the server-side interpretation of a device bearer
// credential: the campaign scope the pairing workflow granted to this
// device. The device itself never inspects the credential.
type DeviceSession struct {
	DeviceID        string
	QuestionnaireID int64
	SiteIDs         []int64
}

// AllowsSite reports whether the session's credential covers the given site.
// An empty SiteIDs list grants every site of the questionnaire.
func (s DeviceSession) AllowsSite(siteID int64) bool {
	if len(s.SiteIDs) == 0 {
		return true
	}
	for _, id := range s.SiteIDs {
		if id == siteID {
			return true
		}
	}
	return false
}
