package core

import "errors"

// ErrDeviceID is returned when a bus device answers with an unexpected ID
var ErrDeviceID = errors.New("unexpected device id")

// RegisterReader reads registers of a device on a shared bus.
// machine.I2C satisfies it on TinyGo targets.
type RegisterReader interface {
	ReadRegister(address uint8, register uint8, data []byte) error
}

// VerifyDeviceID reads one ID register and checks it against want.
// Drivers that ignore bus errors during setup report success for an absent
// device, so this is the presence check.
func VerifyDeviceID(bus RegisterReader, address, register, want uint8) error {
	var id [1]byte
	if err := bus.ReadRegister(address, register, id[:]); err != nil {
		return err
	}
	if id[0] != want {
		DebugPrintln("[DEVICE] addr=" + utoa(uint32(address)) +
			" id=" + utoa(uint32(id[0])) + " want=" + utoa(uint32(want)))
		return ErrDeviceID
	}
	return nil
}
