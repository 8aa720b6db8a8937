package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewTableDAO,
	NewSessionDAO,
	NewItemDAO,
	NewOrderDAO,
	NewVoucherDAO,
	NewAnalyticsDAO,
	NewEquipmentDAO,
	NewReviewDAO,
)
