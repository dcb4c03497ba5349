package homie5

// DevicePublishStep is one step of the ordered publish sequence that brings
// a device online.
type DevicePublishStep int

const (
	// StepDeviceStateInit publishes $state = "init".
	StepDeviceStateInit DevicePublishStep = iota
	// StepDeviceDescription publishes the $description document.
	StepDeviceDescription
	// StepPropertyValues publishes all retained property values.
	StepPropertyValues
	// StepSubscribeProperties subscribes to all settable /set topics.
	StepSubscribeProperties
	// StepDeviceStateReady publishes $state = "ready".
	StepDeviceStateReady
)

// DevicePublishSteps returns the fixed publish sequence. The order never
// depends on description content. The sequence is restartable but not
// resumable: if the transport drops mid-sequence the caller must replay it
// from the start, because consumers infer full synchronization only from a
// transition to "ready" after a complete publish.
func DevicePublishSteps() []DevicePublishStep {
	return []DevicePublishStep{
		StepDeviceStateInit,
		StepDeviceDescription,
		StepPropertyValues,
		StepSubscribeProperties,
		StepDeviceStateReady,
	}
}

// DeviceReconfigureStep is one step of the sequence a device walks to change
// its description at runtime.
type DeviceReconfigureStep int

const (
	// ReconfigureStateInit publishes $state = "init".
	ReconfigureStateInit DeviceReconfigureStep = iota
	// ReconfigureUnsubscribeProperties drops the old /set subscriptions.
	ReconfigureUnsubscribeProperties
	// ReconfigureApply is where the caller swaps in the new description.
	ReconfigureApply
	// ReconfigureDescription publishes the new $description document.
	ReconfigureDescription
	// ReconfigurePropertyValues publishes all retained property values.
	ReconfigurePropertyValues
	// ReconfigureSubscribeProperties subscribes the new /set topics.
	ReconfigureSubscribeProperties
	// ReconfigureStateReady publishes $state = "ready".
	ReconfigureStateReady
)

// DeviceReconfigureSteps returns the fixed reconfiguration sequence.
func DeviceReconfigureSteps() []DeviceReconfigureStep {
	return []DeviceReconfigureStep{
		ReconfigureStateInit,
		ReconfigureUnsubscribeProperties,
		ReconfigureApply,
		ReconfigureDescription,
		ReconfigurePropertyValues,
		ReconfigureSubscribeProperties,
		ReconfigureStateReady,
	}
}

// DeviceDisconnectStep is one step of the clean disconnect sequence.
type DeviceDisconnectStep int

const (
	// DisconnectState publishes $state = "disconnected".
	DisconnectState DeviceDisconnectStep = iota
	// DisconnectUnsubscribeProperties drops the /set subscriptions.
	DisconnectUnsubscribeProperties
)

// DeviceDisconnectSteps returns the fixed clean disconnect sequence.
func DeviceDisconnectSteps() []DeviceDisconnectStep {
	return []DeviceDisconnectStep{
		DisconnectState,
		DisconnectUnsubscribeProperties,
	}
}
