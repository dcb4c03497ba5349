package homie5

// DeviceRef identifies a device by its homie domain and device id. Refs are
// immutable value types: compare them with ==, use them as map keys.
type DeviceRef struct {
	Domain HomieDomain
	ID     HomieID
}

// NewDeviceRef builds a DeviceRef from a domain and device id.
func NewDeviceRef(domain HomieDomain, deviceID HomieID) DeviceRef {
	return DeviceRef{Domain: domain, ID: deviceID}
}

// DeviceID returns the device id portion of the ref.
func (d DeviceRef) DeviceID() HomieID { return d.ID }

// Topic returns the device's base topic (<domain>/5/<device-id>).
func (d DeviceRef) Topic() string {
	return NewTopicBuilder(d.Domain).AddID(d.ID).String()
}

// AttributeTopic returns the topic of a device attribute, e.g. "$state".
func (d DeviceRef) AttributeTopic(attr string) string {
	return NewTopicBuilder(d.Domain).AddID(d.ID).Add(attr).String()
}

// NodeRef identifies a node within a device.
type NodeRef struct {
	Device DeviceRef
	ID     HomieID
}

// NewNodeRef builds a NodeRef from a domain, device id and node id.
func NewNodeRef(domain HomieDomain, deviceID, nodeID HomieID) NodeRef {
	return NodeRef{Device: NewDeviceRef(domain, deviceID), ID: nodeID}
}

// NodeID returns the node id portion of the ref.
func (n NodeRef) NodeID() HomieID { return n.ID }

// DeviceID returns the id of the device the node belongs to.
func (n NodeRef) DeviceID() HomieID { return n.Device.ID }

// Topic returns the node's base topic (<domain>/5/<device-id>/<node-id>).
func (n NodeRef) Topic() string {
	return NewTopicBuilder(n.Device.Domain).AddID(n.Device.ID).AddID(n.ID).String()
}

// PropertyRef identifies a property within a node.
type PropertyRef struct {
	Node NodeRef
	ID   HomieID
}

// NewPropertyRef builds a PropertyRef from a domain, device id, node id and
// property id.
func NewPropertyRef(domain HomieDomain, deviceID, nodeID, propID HomieID) PropertyRef {
	return PropertyRef{Node: NewNodeRef(domain, deviceID, nodeID), ID: propID}
}

// PropertyRefFromNode builds a PropertyRef from an existing NodeRef.
func PropertyRefFromNode(node NodeRef, propID HomieID) PropertyRef {
	return PropertyRef{Node: node, ID: propID}
}

// PropID returns the property id portion of the ref.
func (p PropertyRef) PropID() HomieID { return p.ID }

// NodeID returns the id of the node the property belongs to.
func (p PropertyRef) NodeID() HomieID { return p.Node.ID }

// DeviceID returns the id of the device the property belongs to.
func (p PropertyRef) DeviceID() HomieID { return p.Node.Device.ID }

// DeviceRef returns the ref of the device the property belongs to.
func (p PropertyRef) DeviceRef() DeviceRef { return p.Node.Device }

// MatchesNode reports whether the property lives under node with id propID.
func (p PropertyRef) MatchesNode(node NodeRef, propID HomieID) bool {
	return p.Node == node && p.ID == propID
}

// Topic returns the property's value topic
// (<domain>/5/<device-id>/<node-id>/<property-id>).
func (p PropertyRef) Topic() string {
	return NewTopicBuilder(p.Node.Device.Domain).
		AddID(p.Node.Device.ID).
		AddID(p.Node.ID).
		AddID(p.ID).
		String()
}

// AttributeTopic returns a topic below the property's value topic, e.g.
// "$target" or "set".
func (p PropertyRef) AttributeTopic(attr string) string {
	return NewTopicBuilder(p.Node.Device.Domain).
		AddID(p.Node.Device.ID).
		AddID(p.Node.ID).
		AddID(p.ID).
		Add(attr).
		String()
}
