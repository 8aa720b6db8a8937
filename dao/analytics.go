package dao

import (
	"context"
	"time"

	"Tably/models"
	"Tably/types"

	"gorm.io/gorm"
)

type AnalyticsDAO struct {
	Repo[models.AnalyticsCheckout]
}

func NewAnalyticsDAO(db *gorm.DB) *AnalyticsDAO {
	return &AnalyticsDAO{Repo: NewRepo[models.AnalyticsCheckout](db)}
}

func (d *AnalyticsDAO) Range(ctx context.Context, min, max time.Time) ([]models.AnalyticsCheckout, error) {
	var records []models.AnalyticsCheckout
	err := d.Db.WithContext(ctx).
		Where("checkout_time >= ? AND checkout_time <= ?", min, max).
		Order("checkout_time").
		Find(&records).Error
	return records, err
}

func (d *AnalyticsDAO) Stats(ctx context.Context, start, end time.Time) (types.PeriodStats, error) {
	var row struct {
		SalesCount    int64
		Revenue       float64
		GovernmentTax float64
		ServiceTax    float64
	}
	err := d.Db.WithContext(ctx).Model(&models.AnalyticsCheckout{}).
		Select("COUNT(analytics_id) AS sales_count, COALESCE(SUM(net_total),0) AS revenue, COALESCE(SUM(gst_total),0) AS government_tax, COALESCE(SUM(sst_total),0) AS service_tax").
		Where("checkout_time >= ? AND checkout_time <= ?", start, end).
		Scan(&row).Error
	if err != nil {
		return types.PeriodStats{}, err
	}
	return types.PeriodStats{
		SalesCount:    row.SalesCount,
		Revenue:       row.Revenue,
		GovernmentTax: row.GovernmentTax,
		ServiceTax:    row.ServiceTax,
	}, nil
}

func (d *AnalyticsDAO) PaymentMethodCounts(ctx context.Context, start, end time.Time) (map[string]int64, error) {
	var rows []struct {
		PaymentMethod string
		Count         int64
	}
	err := d.Db.WithContext(ctx).Model(&models.AnalyticsCheckout{}).
		Select("payment_method, COUNT(analytics_id) AS count").
		Where("checkout_time >= ? AND checkout_time <= ?", start, end).
		Group("payment_method").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.PaymentMethod] = r.Count
	}
	return counts, nil
}
