package model

// All returns every model the service owns, in dependency order for migration.
func All() []any {
	return []any{
		&ChildModel{},
		&RecipientModel{},
		&ChildGuardianModel{},
		&ChildStaffModel{},
		&SafeZoneModel{},
		&LocationRecordModel{},
		&AlertEventModel{},
		&AlertEventRecipientModel{},
		&DeliveryLogModel{},
		&RecipientDeviceModel{},
	}
}
