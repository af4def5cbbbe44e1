package pb

// The messages below are maintained by hand and mirror lmt.proto. They carry
// protobuf struct tags and no file descriptor, which is all gogo/protobuf's
// reflection based Marshal and Unmarshal need.

import (
	"github.com/gogo/protobuf/proto"
)

const _ = proto.GoGoProtoPackageIsVersion3

// Proof is an inclusion proof of a single leaf.
type Proof struct {
	// index of the proven leaf.
	Index int64 `protobuf:"varint,1,opt,name=index,proto3" json:"index,omitempty"`
	// total number of leaves of the tree.
	Total int64 `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	// sibling hashes, leaf level first.
	Nodes []string `protobuf:"bytes,3,rep,name=nodes,proto3" json:"nodes,omitempty"`
}

func (m *Proof) Reset()         { *m = Proof{} }
func (m *Proof) String() string { return proto.CompactTextString(m) }
func (*Proof) ProtoMessage()    {}

func (m *Proof) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

func (m *Proof) GetTotal() int64 {
	if m != nil {
		return m.Total
	}
	return 0
}

func (m *Proof) GetNodes() []string {
	if m != nil {
		return m.Nodes
	}
	return nil
}

// LeafSet is a persisted leaf list together with the root it produced.
type LeafSet struct {
	Leaves []string `protobuf:"bytes,1,rep,name=leaves,proto3" json:"leaves,omitempty"`
	Root   string   `protobuf:"bytes,2,opt,name=root,proto3" json:"root,omitempty"`
	// name of the combiner the root was computed with.
	Hasher string `protobuf:"bytes,3,opt,name=hasher,proto3" json:"hasher,omitempty"`
}

func (m *LeafSet) Reset()         { *m = LeafSet{} }
func (m *LeafSet) String() string { return proto.CompactTextString(m) }
func (*LeafSet) ProtoMessage()    {}

func (m *LeafSet) GetLeaves() []string {
	if m != nil {
		return m.Leaves
	}
	return nil
}

func (m *LeafSet) GetRoot() string {
	if m != nil {
		return m.Root
	}
	return ""
}

func (m *LeafSet) GetHasher() string {
	if m != nil {
		return m.Hasher
	}
	return ""
}

func init() {
	proto.RegisterType((*Proof)(nil), "lmt.pb.Proof")
	proto.RegisterType((*LeafSet)(nil), "lmt.pb.LeafSet")
}
