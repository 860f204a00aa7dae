// Package mem defines the request/response protocol spoken on the top port
// of a memory controller: reads, writes, and their completions.
package mem

import "github.com/aka-sps/dramsim2/sim/modeling"

var (
	accessReqByteOverhead = 12
	accessRspByteOverhead = 4
)

// AccessReq abstracts read and write requests sent to a memory controller.
type AccessReq interface {
	modeling.Msg
	GetAddress() uint64
	GetByteSize() uint64
}

// AccessRsp is a response in the memory system.
type AccessRsp interface {
	modeling.Msg
	modeling.Rsp
}

// ReadReq is a request sent to a memory controller to fetch data.
type ReadReq struct {
	modeling.MsgMeta

	Address        uint64
	AccessByteSize uint64
	Info           interface{}
}

// Meta returns the message metadata.
func (r ReadReq) Meta() modeling.MsgMeta { return r.MsgMeta }

// Clone returns a copy of the request with a fresh ID.
func (r ReadReq) Clone() modeling.Msg {
	clone := r
	clone.ID = newID()

	return clone
}

// GetAddress returns the address the request is accessing.
func (r ReadReq) GetAddress() uint64 { return r.Address }

// GetByteSize returns the number of bytes the request is accessing.
func (r ReadReq) GetByteSize() uint64 { return r.AccessByteSize }

// GenerateRsp builds the DataReadyRsp this request expects; the caller must
// still attach the fetched payload.
func (r ReadReq) GenerateRsp() modeling.Rsp {
	return DataReadyRsp{
		MsgMeta: modeling.MsgMeta{
			ID:  newID(),
			Src: r.Dst,
			Dst: r.Src,
		},
		RespondTo: r.ID,
	}
}

// ReadReqBuilder builds ReadReqs.
type ReadReqBuilder struct {
	src, dst modeling.RemotePort
	address  uint64
	byteSize uint64
	info     interface{}
}

// WithSrc sets the source port of the request to build.
func (b ReadReqBuilder) WithSrc(src modeling.RemotePort) ReadReqBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the request to build.
func (b ReadReqBuilder) WithDst(dst modeling.RemotePort) ReadReqBuilder {
	b.dst = dst
	return b
}

// WithAddress sets the address of the request to build.
func (b ReadReqBuilder) WithAddress(address uint64) ReadReqBuilder {
	b.address = address
	return b
}

// WithByteSize sets the byte size of the request to build.
func (b ReadReqBuilder) WithByteSize(byteSize uint64) ReadReqBuilder {
	b.byteSize = byteSize
	return b
}

// WithInfo attaches opaque caller info to the request to build.
func (b ReadReqBuilder) WithInfo(info interface{}) ReadReqBuilder {
	b.info = info
	return b
}

// Build creates the ReadReq.
func (b ReadReqBuilder) Build() ReadReq {
	return ReadReq{
		MsgMeta: modeling.MsgMeta{
			ID:           newID(),
			Src:          b.src,
			Dst:          b.dst,
			TrafficBytes: accessReqByteOverhead,
		},
		Address:        b.address,
		AccessByteSize: b.byteSize,
		Info:           b.info,
	}
}

// WriteReq is a request sent to a memory controller to write data.
type WriteReq struct {
	modeling.MsgMeta

	Address uint64
	Data    []byte
	Info    interface{}
}

// Meta returns the message metadata.
func (r WriteReq) Meta() modeling.MsgMeta { return r.MsgMeta }

// Clone returns a copy of the request with a fresh ID.
func (r WriteReq) Clone() modeling.Msg {
	clone := r
	clone.ID = newID()

	return clone
}

// GetAddress returns the address the request is accessing.
func (r WriteReq) GetAddress() uint64 { return r.Address }

// GetByteSize returns the number of bytes the request is writing.
func (r WriteReq) GetByteSize() uint64 { return uint64(len(r.Data)) }

// GenerateRsp builds the WriteDoneRsp this request expects.
func (r WriteReq) GenerateRsp() modeling.Rsp {
	return WriteDoneRsp{
		MsgMeta: modeling.MsgMeta{
			ID:  newID(),
			Src: r.Dst,
			Dst: r.Src,
		},
		RespondTo: r.ID,
	}
}

// WriteReqBuilder builds WriteReqs.
type WriteReqBuilder struct {
	src, dst modeling.RemotePort
	address  uint64
	data     []byte
	info     interface{}
}

// WithSrc sets the source port of the request to build.
func (b WriteReqBuilder) WithSrc(src modeling.RemotePort) WriteReqBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the request to build.
func (b WriteReqBuilder) WithDst(dst modeling.RemotePort) WriteReqBuilder {
	b.dst = dst
	return b
}

// WithAddress sets the address of the request to build.
func (b WriteReqBuilder) WithAddress(address uint64) WriteReqBuilder {
	b.address = address
	return b
}

// WithData sets the payload of the request to build.
func (b WriteReqBuilder) WithData(data []byte) WriteReqBuilder {
	b.data = data
	return b
}

// WithInfo attaches opaque caller info to the request to build.
func (b WriteReqBuilder) WithInfo(info interface{}) WriteReqBuilder {
	b.info = info
	return b
}

// Build creates the WriteReq.
func (b WriteReqBuilder) Build() WriteReq {
	return WriteReq{
		MsgMeta: modeling.MsgMeta{
			ID:           newID(),
			Src:          b.src,
			Dst:          b.dst,
			TrafficBytes: len(b.data) + accessReqByteOverhead,
		},
		Address: b.address,
		Data:    b.data,
		Info:    b.info,
	}
}

// DataReadyRsp carries the data fetched for a ReadReq back to its sender.
type DataReadyRsp struct {
	modeling.MsgMeta

	RespondTo string
	Data      []byte
}

// Meta returns the message metadata.
func (r DataReadyRsp) Meta() modeling.MsgMeta { return r.MsgMeta }

// Clone returns a copy of the response with a fresh ID.
func (r DataReadyRsp) Clone() modeling.Msg {
	clone := r
	clone.ID = newID()

	return clone
}

// GetRspTo returns the ID of the request being responded to.
func (r DataReadyRsp) GetRspTo() string { return r.RespondTo }

// DataReadyRspBuilder builds DataReadyRsps.
type DataReadyRspBuilder struct {
	src, dst modeling.RemotePort
	rspTo    string
	data     []byte
}

// WithSrc sets the source port of the response to build.
func (b DataReadyRspBuilder) WithSrc(src modeling.RemotePort) DataReadyRspBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the response to build.
func (b DataReadyRspBuilder) WithDst(dst modeling.RemotePort) DataReadyRspBuilder {
	b.dst = dst
	return b
}

// WithRspTo sets the ID of the request being responded to.
func (b DataReadyRspBuilder) WithRspTo(id string) DataReadyRspBuilder {
	b.rspTo = id
	return b
}

// WithData sets the payload of the response to build.
func (b DataReadyRspBuilder) WithData(data []byte) DataReadyRspBuilder {
	b.data = data
	return b
}

// Build creates the DataReadyRsp.
func (b DataReadyRspBuilder) Build() DataReadyRsp {
	return DataReadyRsp{
		MsgMeta: modeling.MsgMeta{
			ID:           newID(),
			Src:          b.src,
			Dst:          b.dst,
			TrafficBytes: len(b.data) + accessRspByteOverhead,
		},
		RespondTo: b.rspTo,
		Data:      b.data,
	}
}

// WriteDoneRsp marks a previous WriteReq as completed.
type WriteDoneRsp struct {
	modeling.MsgMeta

	RespondTo string
}

// Meta returns the message metadata.
func (r WriteDoneRsp) Meta() modeling.MsgMeta { return r.MsgMeta }

// Clone returns a copy of the response with a fresh ID.
func (r WriteDoneRsp) Clone() modeling.Msg {
	clone := r
	clone.ID = newID()

	return clone
}

// GetRspTo returns the ID of the request being responded to.
func (r WriteDoneRsp) GetRspTo() string { return r.RespondTo }

// WriteDoneRspBuilder builds WriteDoneRsps.
type WriteDoneRspBuilder struct {
	src, dst modeling.RemotePort
	rspTo    string
}

// WithSrc sets the source port of the response to build.
func (b WriteDoneRspBuilder) WithSrc(src modeling.RemotePort) WriteDoneRspBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the response to build.
func (b WriteDoneRspBuilder) WithDst(dst modeling.RemotePort) WriteDoneRspBuilder {
	b.dst = dst
	return b
}

// WithRspTo sets the ID of the request being responded to.
func (b WriteDoneRspBuilder) WithRspTo(id string) WriteDoneRspBuilder {
	b.rspTo = id
	return b
}

// Build creates the WriteDoneRsp.
func (b WriteDoneRspBuilder) Build() WriteDoneRsp {
	return WriteDoneRsp{
		MsgMeta: modeling.MsgMeta{
			ID:           newID(),
			Src:          b.src,
			Dst:          b.dst,
			TrafficBytes: accessRspByteOverhead,
		},
		RespondTo: b.rspTo,
	}
}
