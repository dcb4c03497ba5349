package homie5

// DeviceDescriptionBuilder accumulates device description fields and
// produces an immutable document on Build. Builders never touch the network:
// Build is pure data assembly plus the content-hash version update.
type DeviceDescriptionBuilder struct {
	desc DeviceDescription
}

// NewDeviceDescriptionBuilder starts an empty description for the current
// convention version.
func NewDeviceDescriptionBuilder() *DeviceDescriptionBuilder {
	return &DeviceDescriptionBuilder{desc: DeviceDescription{Homie: ProtocolVersionFull}}
}

// DeviceDescriptionBuilderFrom starts from a copy of an existing
// description.
func DeviceDescriptionBuilderFrom(desc *DeviceDescription) *DeviceDescriptionBuilder {
	b := &DeviceDescriptionBuilder{desc: *desc}
	b.desc.Children = append([]HomieID(nil), desc.Children...)
	b.desc.Extensions = append([]string(nil), desc.Extensions...)
	b.desc.Nodes = make(map[HomieID]*NodeDescription, len(desc.Nodes))
	for id, node := range desc.Nodes {
		copied := *node
		copied.Properties = make(map[HomieID]*PropertyDescription, len(node.Properties))
		for pid, prop := range node.Properties {
			p := *prop
			copied.Properties[pid] = &p
		}
		b.desc.Nodes[id] = &copied
	}
	return b
}

// Name sets the friendly device name.
func (b *DeviceDescriptionBuilder) Name(name string) *DeviceDescriptionBuilder {
	b.desc.Name = name
	return b
}

// Root sets the id of the root parent device. Root devices leave it unset.
func (b *DeviceDescriptionBuilder) Root(rootID HomieID) *DeviceDescriptionBuilder {
	b.desc.Root = &rootID
	return b
}

// Parent sets the id of the direct parent device.
func (b *DeviceDescriptionBuilder) Parent(parentID HomieID) *DeviceDescriptionBuilder {
	b.desc.Parent = &parentID
	return b
}

// AddChild appends a child device id.
func (b *DeviceDescriptionBuilder) AddChild(childID HomieID) *DeviceDescriptionBuilder {
	b.desc.AddChild(childID)
	return b
}

// RemoveChild removes a child device id if present.
func (b *DeviceDescriptionBuilder) RemoveChild(childID HomieID) *DeviceDescriptionBuilder {
	b.desc.RemoveChild(childID)
	return b
}

// AddExtension appends a supported extension identifier.
func (b *DeviceDescriptionBuilder) AddExtension(ext string) *DeviceDescriptionBuilder {
	b.desc.Extensions = append(b.desc.Extensions, ext)
	return b
}

// AddNode inserts a node description. Adding the same id twice keeps the
// last description (last write wins).
func (b *DeviceDescriptionBuilder) AddNode(nodeID HomieID, node *NodeDescription) *DeviceDescriptionBuilder {
	if b.desc.Nodes == nil {
		b.desc.Nodes = make(map[HomieID]*NodeDescription)
	}
	b.desc.Nodes[nodeID] = node
	return b
}

// RemoveNode drops a node description if present.
func (b *DeviceDescriptionBuilder) RemoveNode(nodeID HomieID) *DeviceDescriptionBuilder {
	delete(b.desc.Nodes, nodeID)
	return b
}

// If applies fn to the builder only when cond holds. Useful for optional
// parts of a device tree.
func (b *DeviceDescriptionBuilder) If(cond bool, fn func(*DeviceDescriptionBuilder)) *DeviceDescriptionBuilder {
	if cond {
		fn(b)
	}
	return b
}

// Build finalizes the description, computing the content-hash version.
func (b *DeviceDescriptionBuilder) Build() *DeviceDescription {
	desc := b.desc
	desc.UpdateVersion()
	return &desc
}

// NodeDescriptionBuilder accumulates node description fields.
type NodeDescriptionBuilder struct {
	desc NodeDescription
}

func NewNodeDescriptionBuilder() *NodeDescriptionBuilder {
	return &NodeDescriptionBuilder{}
}

// Name sets the friendly node name.
func (b *NodeDescriptionBuilder) Name(name string) *NodeDescriptionBuilder {
	b.desc.Name = name
	return b
}

// Type sets the free-form node type string.
func (b *NodeDescriptionBuilder) Type(nodeType string) *NodeDescriptionBuilder {
	b.desc.Type = nodeType
	return b
}

// AddProperty inserts a property description. Adding the same id twice
// keeps the last description (last write wins).
func (b *NodeDescriptionBuilder) AddProperty(propID HomieID, prop *PropertyDescription) *NodeDescriptionBuilder {
	if b.desc.Properties == nil {
		b.desc.Properties = make(map[HomieID]*PropertyDescription)
	}
	b.desc.Properties[propID] = prop
	return b
}

// RemoveProperty drops a property description if present.
func (b *NodeDescriptionBuilder) RemoveProperty(propID HomieID) *NodeDescriptionBuilder {
	delete(b.desc.Properties, propID)
	return b
}

// If applies fn to the builder only when cond holds.
func (b *NodeDescriptionBuilder) If(cond bool, fn func(*NodeDescriptionBuilder)) *NodeDescriptionBuilder {
	if cond {
		fn(b)
	}
	return b
}

// Build finalizes the node description.
func (b *NodeDescriptionBuilder) Build() *NodeDescription {
	desc := b.desc
	return &desc
}

// PropertyDescriptionBuilder accumulates property description fields. The
// datatype is fixed at construction; settable defaults to false and
// retained to true.
type PropertyDescriptionBuilder struct {
	desc PropertyDescription
}

func NewPropertyDescriptionBuilder(datatype HomieDataType) *PropertyDescriptionBuilder {
	return &PropertyDescriptionBuilder{desc: PropertyDescription{
		DataType: datatype,
		Settable: DefaultSettable,
		Retained: DefaultRetained,
	}}
}

// Name sets the friendly property name.
func (b *PropertyDescriptionBuilder) Name(name string) *PropertyDescriptionBuilder {
	b.desc.Name = name
	return b
}

// Format sets the property's format constraint.
func (b *PropertyDescriptionBuilder) Format(format PropertyFormat) *PropertyDescriptionBuilder {
	b.desc.Format = format
	return b
}

// Settable marks the property as accepting set commands.
func (b *PropertyDescriptionBuilder) Settable(settable bool) *PropertyDescriptionBuilder {
	b.desc.Settable = settable
	return b
}

// Retained controls whether the property value is published retained.
func (b *PropertyDescriptionBuilder) Retained(retained bool) *PropertyDescriptionBuilder {
	b.desc.Retained = retained
	return b
}

// Unit sets the property unit, typically one of the Unit constants.
func (b *PropertyDescriptionBuilder) Unit(unit string) *PropertyDescriptionBuilder {
	b.desc.Unit = unit
	return b
}

// If applies fn to the builder only when cond holds.
func (b *PropertyDescriptionBuilder) If(cond bool, fn func(*PropertyDescriptionBuilder)) *PropertyDescriptionBuilder {
	if cond {
		fn(b)
	}
	return b
}

// Build finalizes the property description.
func (b *PropertyDescriptionBuilder) Build() *PropertyDescription {
	desc := b.desc
	return &desc
}
