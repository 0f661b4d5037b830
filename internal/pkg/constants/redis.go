package constants

// Redis key formats
const (
	KeyDriverLocation  = "driver:location:%s"     // Format: driver:location:{driver_id}
	KeyDriverGeo       = "driver:geo"             // Geo set of all driver positions
	KeyTrackedDrivers  = "drivers:tracked"        // Set of driver IDs with a stored position
	KeyLocationLimiter = "rate:limit:location:%s" // Format: rate:limit:location:{account_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldHeading   = "heading"
	FieldSpeed     = "speed"
	FieldTimestamp = "ts"
	FieldDriverID  = "driver_id"
)
