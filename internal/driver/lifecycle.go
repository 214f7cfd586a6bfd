package driver

import "github.com/wheelibin/light-driver/internal/models"

func (d *Driver) OnConnect() error {
	return d.reporter.SetDeviceState(models.DeviceStateConnected)
}

func (d *Driver) OnDisconnect() error {
	return d.reporter.SetDeviceState(models.DeviceStateDisconnected)
}

// the registry has already moved the entities, nothing to do apart from logging
func (d *Driver) OnSubscribe(ids []string) {
	for _, id := range ids {
		d.logger.Info("Subscribed entity", "id", id)
	}
}

func (d *Driver) OnUnsubscribe(ids []string) {
	for _, id := range ids {
		d.logger.Info("Unsubscribed entity", "id", id)
	}
}
