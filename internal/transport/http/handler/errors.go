package handler

const (
	errInternalServer     = "Internal server error"
	errTokenInvalid       = "Token is invalid or expired"
	errClientNotFound     = "Client not found"
	errSiteNotFound       = "Site not found"
	errHostingNotFound    = "Hosting account not found"
	errMobileAppNotFound  = "Mobile app not found"
	errDevAccountNotFound = "Developer account not found"
	errInvalidPlatform    = "Platform must be ios or android"
	errBadHostingRef      = "Referenced hosting account does not exist"
	errBadDevAccountRef   = "Referenced developer account does not exist"
)

// dateLayout is the wire format for calendar dates (no time component).
const dateLayout = "2006-01-02"
