package homie5

// ProtocolVersion is the Homie major version used in every MQTT topic ("5").
const ProtocolVersion = "5"

// ProtocolVersionFull is the convention version carried in the device
// description document ("5.0").
const ProtocolVersionFull = "5.0"

// Device attribute topic segments.
const (
	AttrState       = "$state"
	AttrDescription = "$description"
	AttrLog         = "$log"
	AttrAlert       = "$alert"
)

// Property attribute topic segments.
const (
	// AttrTarget is the attribute under which a device publishes the
	// desired target state of a property.
	AttrTarget = "$target"

	// SetSuffix is the topic suffix under which set commands are published
	// to alter a settable property.
	SetSuffix = "set"
)

// BroadcastSegment is the reserved segment for domain-wide broadcast topics.
const BroadcastSegment = "$broadcast"

// deviceAttributes lists all device attributes in publish/clear order.
// $state must come first: device removal starts by clearing $state.
var deviceAttributes = []string{AttrState, AttrLog, AttrAlert, AttrDescription}

// Common property units as defined by the convention's recommended unit set.
const (
	UnitDegreeCelsius    = "°C"
	UnitDegreeFahrenheit = "°F"
	UnitDegree           = "°"
	UnitLiter            = "L"
	UnitGallon           = "gal"
	UnitVolt             = "V"
	UnitWatt             = "W"
	UnitKilowatt         = "kW"
	UnitKilowattHour     = "kWh"
	UnitAmpere           = "A"
	UnitMilliAmpere      = "mA"
	UnitHertz            = "Hz"
	UnitPercent          = "%"
	UnitMeter            = "m"
	UnitCubicMeter       = "m³"
	UnitFeet             = "ft"
	UnitPascal           = "Pa"
	UnitKilopascal       = "kPa"
	UnitPSI              = "psi"
	UnitSeconds          = "s"
	UnitMinutes          = "min"
	UnitHours            = "h"
	UnitLux              = "lx"
	UnitKelvin           = "K"
	UnitMired            = "MK⁻¹"
	UnitCount            = "#"
)
