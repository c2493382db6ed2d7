//go:build rp2040

package main

import (
	"machine"

	"tinygo.org/x/drivers/adxl345"

	"ticktimer/core"
)

// ADXL345 wiring: I2C0 SDA=GPIO4 SCL=GPIO5, SDO low
const (
	accelAddress = adxl345.AddressLow
	i2cFrequency = 400 * machine.KHz

	accelRegDevID = 0x00
	accelDevID    = 0xE5
)

// accelSensor samples an ADXL345 on I2C0
type accelSensor struct {
	dev adxl345.Device
}

// initAccel configures I2C0 and the accelerometer
func initAccel() (*accelSensor, error) {
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA:       machine.GPIO4,
		SCL:       machine.GPIO5,
		Frequency: i2cFrequency,
	})
	if err != nil {
		return nil, err
	}

	// adxl345.Configure drops write errors, so check the sensor answers first
	if err := core.VerifyDeviceID(machine.I2C0, uint8(accelAddress), accelRegDevID, accelDevID); err != nil {
		return nil, err
	}

	dev := adxl345.New(machine.I2C0)
	dev.Address = accelAddress
	dev.Configure()
	dev.SetRate(adxl345.RATE_100HZ)
	dev.SetRange(adxl345.RANGE_4G)

	return &accelSensor{dev: dev}, nil
}

// sample reads one raw acceleration triple
func (s *accelSensor) sample() (x, y, z int32) {
	rx, ry, rz := s.dev.ReadRawAcceleration()
	return int32(rx), int32(ry), int32(rz)
}
