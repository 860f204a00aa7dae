package modeling

import (
	"github.com/aka-sps/dramsim2/sim/hooking"
	"github.com/aka-sps/dramsim2/sim/naming"
)

// SendError marks a failed send or deliver.
type SendError struct{}

// NewSendError creates a SendError.
func NewSendError() *SendError { return new(SendError) }

// A Connection is responsible for delivering messages to their destination.
type Connection interface {
	naming.Named
	hooking.Hookable

	PlugIn(port Port)
	Unplug(port Port)
	NotifyAvailable(port Port)
	NotifySend()
}

// HookPosConnStartSend marks a connection accepting a message to send.
var HookPosConnStartSend = &hooking.HookPos{Name: "Conn Start Send"}

// HookPosConnDeliver marks a connection having delivered a message.
var HookPosConnDeliver = &hooking.HookPos{Name: "Conn Deliver"}
