package replication

import "errors"

var (
	ErrReplicationNotFound  = errors.New("replication not found")
	ErrVolumeNotFound       = errors.New("volume not found")
	ErrMasterVolumeRequired = errors.New("replication master_volume must be specified")
	ErrSlaveVolumeRequired  = errors.New("replication slave_volume must be specified")
	ErrSameVolume           = errors.New("the slave volume and master volume can not be the same")
	ErrSameAvailabilityZone = errors.New("the slave volume and master volume can not be the same availability_zone")
	ErrGatewayFailed        = errors.New("storage gateway request failed")
)
