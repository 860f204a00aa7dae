package modeling

import "github.com/aka-sps/dramsim2/sim/id"

// A RemotePort refers to another component's port by name.
type RemotePort string

// A Msg is a piece of information transferred between components.
type Msg interface {
	Meta() MsgMeta
	Clone() Msg
}

// MsgMeta contains the metadata attached to every message.
type MsgMeta struct {
	ID           string
	Src, Dst     RemotePort
	TrafficClass int
	TrafficBytes int
}

// Req is a request message.
type Req interface {
	Msg
	GenerateRsp() Rsp
}

// Rsp indicates completion of a request.
type Rsp interface {
	Msg
	GetRspTo() string
}

// GeneralRsp is a generic response used when no request-specific payload is
// needed.
type GeneralRsp struct {
	MsgMeta

	OriginalReq Msg
}

// Meta returns the message metadata.
func (r GeneralRsp) Meta() MsgMeta { return r.MsgMeta }

// Clone returns a copy of the response with a fresh ID.
func (r GeneralRsp) Clone() Msg {
	clone := r
	clone.ID = id.Generate()

	return clone
}

// GetRspTo returns the ID of the original request.
func (r GeneralRsp) GetRspTo() string {
	return r.OriginalReq.Meta().ID
}
