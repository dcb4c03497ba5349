package homie5

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"sort"
	"strconv"
)

// Description document defaults.
const (
	DefaultSettable = false
	DefaultRetained = true
)

// PropertyDescription describes a single property of a node: its datatype,
// optional format constraint, unit and the settable/retained flags.
type PropertyDescription struct {
	Name     string
	DataType HomieDataType
	Format   PropertyFormat
	Settable bool
	Retained bool
	Unit     string
}

// propertyDescriptionWire mirrors PropertyDescription with the format as its
// raw string. The format can only be parsed once the datatype is known, so
// decoding happens in two phases.
type propertyDescriptionWire struct {
	Name     string          `json:"name,omitempty"`
	DataType HomieDataType   `json:"datatype"`
	Format   string          `json:"format,omitempty"`
	Settable *bool           `json:"settable,omitempty"`
	Retained *bool           `json:"retained,omitempty"`
	Unit     string          `json:"unit,omitempty"`
}

// MarshalJSON encodes the property in the description wire format. Default
// settable/retained flags and empty formats are omitted.
func (p PropertyDescription) MarshalJSON() ([]byte, error) {
	wire := propertyDescriptionWire{
		Name:     p.Name,
		DataType: p.DataType,
		Format:   FormatString(p.Format),
		Unit:     p.Unit,
	}
	if p.Settable != DefaultSettable {
		v := p.Settable
		wire.Settable = &v
	}
	if p.Retained != DefaultRetained {
		v := p.Retained
		wire.Retained = &v
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes the wire format, resolving the format string against
// the decoded datatype.
func (p *PropertyDescription) UnmarshalJSON(data []byte) error {
	var wire propertyDescriptionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDescription, err)
	}
	format, err := ParsePropertyFormat(wire.Format, wire.DataType)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDescription, err)
	}
	p.Name = wire.Name
	p.DataType = wire.DataType
	p.Format = format
	p.Unit = wire.Unit
	p.Settable = DefaultSettable
	if wire.Settable != nil {
		p.Settable = *wire.Settable
	}
	p.Retained = DefaultRetained
	if wire.Retained != nil {
		p.Retained = *wire.Retained
	}
	return nil
}

// NodeDescription describes a node and its properties, indexed by property
// id.
type NodeDescription struct {
	Name       string                            `json:"name,omitempty"`
	Type       string                            `json:"type,omitempty"`
	Properties map[HomieID]*PropertyDescription  `json:"properties,omitempty"`
}

// Property returns the description of the property with the given id, or
// nil.
func (n *NodeDescription) Property(propID HomieID) *PropertyDescription {
	if n == nil {
		return nil
	}
	return n.Properties[propID]
}

// DeviceDescription is the JSON document a device publishes on its
// $description attribute.
type DeviceDescription struct {
	Name       string                         `json:"name,omitempty"`
	Version    int64                          `json:"version"`
	Homie      string                         `json:"homie"`
	Children   []HomieID                      `json:"children,omitempty"`
	Root       *HomieID                       `json:"root,omitempty"`
	Parent     *HomieID                       `json:"parent,omitempty"`
	Extensions []string                       `json:"extensions,omitempty"`
	Nodes      map[HomieID]*NodeDescription   `json:"nodes,omitempty"`
}

// NewDeviceDescription returns an empty description for the current
// convention version.
func NewDeviceDescription() *DeviceDescription {
	return &DeviceDescription{Homie: ProtocolVersionFull}
}

// ParseDescription decodes a $description payload.
func ParseDescription(payload []byte) (*DeviceDescription, error) {
	var desc DeviceDescription
	if err := json.Unmarshal(payload, &desc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescription, err)
	}
	return &desc, nil
}

// Marshal encodes the description into its canonical wire form. Map keys
// serialize in sorted order, so equal descriptions produce identical bytes.
func (d *DeviceDescription) Marshal() ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescription, err)
	}
	return data, nil
}

// Node returns the description of the node with the given id, or nil.
func (d *DeviceDescription) Node(nodeID HomieID) *NodeDescription {
	if d == nil {
		return nil
	}
	return d.Nodes[nodeID]
}

// Property resolves a node-id/property-id pair against the description,
// returning nil if either level is absent. This is the standard way to look
// up the description for an incoming property addressed message.
func (d *DeviceDescription) Property(nodeID, propID HomieID) *PropertyDescription {
	return d.Node(nodeID).Property(propID)
}

// PropertyForRef resolves a PropertyRef against the description.
func (d *DeviceDescription) PropertyForRef(ref PropertyRef) *PropertyDescription {
	return d.Property(ref.NodeID(), ref.PropID())
}

// WithProperty applies fn to the resolved property description and reports
// whether the property exists.
func (d *DeviceDescription) WithProperty(ref PropertyRef, fn func(*PropertyDescription)) bool {
	prop := d.PropertyForRef(ref)
	if prop == nil {
		return false
	}
	fn(prop)
	return true
}

// EachProperty visits every property in deterministic order (nodes and
// properties sorted by id). Returning false from fn stops the walk.
func (d *DeviceDescription) EachProperty(fn func(nodeID HomieID, propID HomieID, prop *PropertyDescription) bool) {
	for _, nodeID := range sortedKeys(d.Nodes) {
		node := d.Nodes[nodeID]
		for _, propID := range sortedKeys(node.Properties) {
			if !fn(nodeID, propID, node.Properties[propID]) {
				return
			}
		}
	}
}

// AddChild records a child device id, ignoring duplicates.
func (d *DeviceDescription) AddChild(childID HomieID) {
	for _, id := range d.Children {
		if id == childID {
			return
		}
	}
	d.Children = append(d.Children, childID)
}

// RemoveChild removes a child device id if present.
func (d *DeviceDescription) RemoveChild(childID HomieID) {
	for i, id := range d.Children {
		if id == childID {
			d.Children = append(d.Children[:i], d.Children[i+1:]...)
			return
		}
	}
}

// UpdateVersion recomputes the description's version attribute as a content
// hash over every field except the version itself. Two descriptions with the
// same content always produce the same version.
func (d *DeviceDescription) UpdateVersion() {
	h := fnv.New64a()
	d.hashInto(h)
	d.Version = int64(h.Sum64())
}

func (d *DeviceDescription) hashInto(w io.Writer) {
	writeHashField(w, d.Name)
	writeHashField(w, d.Homie)
	for _, child := range d.Children {
		writeHashField(w, child.String())
	}
	if d.Root != nil {
		writeHashField(w, d.Root.String())
	}
	if d.Parent != nil {
		writeHashField(w, d.Parent.String())
	}
	for _, ext := range d.Extensions {
		writeHashField(w, ext)
	}
	for _, nodeID := range sortedKeys(d.Nodes) {
		node := d.Nodes[nodeID]
		writeHashField(w, nodeID.String())
		writeHashField(w, node.Name)
		writeHashField(w, node.Type)
		for _, propID := range sortedKeys(node.Properties) {
			prop := node.Properties[propID]
			writeHashField(w, propID.String())
			writeHashField(w, prop.Name)
			writeHashField(w, prop.DataType.String())
			writeHashField(w, FormatString(prop.Format))
			writeHashField(w, strconv.FormatBool(prop.Settable))
			writeHashField(w, strconv.FormatBool(prop.Retained))
			writeHashField(w, prop.Unit)
		}
	}
}

// writeHashField length-prefixes each field so that adjacent fields cannot
// collide by concatenation.
func writeHashField(w io.Writer, s string) {
	fmt.Fprintf(w, "%d:%s;", len(s), s)
}

func sortedKeys[V any](m map[HomieID]V) []HomieID {
	keys := make([]HomieID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
