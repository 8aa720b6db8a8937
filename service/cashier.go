package service

import (
	"context"
	"encoding/json"
	"time"

	"Tably/config"
	"Tably/dao"
	"Tably/models"
	"Tably/pkg/log"
	"Tably/pkg/response"
	"Tably/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CashierService struct {
	Config       *config.Config
	DB           *gorm.DB
	SessionDAO   *dao.SessionDAO
	OrderDAO     *dao.OrderDAO
	VoucherDAO   *dao.VoucherDAO
	AnalyticsDAO *dao.AnalyticsDAO
}

var _ ICashierService = (*CashierService)(nil)

type ICashierService interface {
	Preview(ctx context.Context, sessionID string) (*types.ReceiptInfo, error)
	Checkout(ctx context.Context, sessionID, paymentMethod string, cashierID int64) (*types.ReceiptInfo, error)
	Analytics(ctx context.Context, min, max time.Time) ([]models.AnalyticsCheckout, error)
	Stats(ctx context.Context) (*types.StatsSummary, error)
}

func (s *CashierService) rates() BillingRates {
	return BillingRates{
		GovernmentTax: s.Config.Billing.GovernmentTax,
		ServiceTax:    s.Config.Billing.ServiceTax,
	}
}

// Preview computes the bill for an Active session with no side effects.
func (s *CashierService) Preview(ctx context.Context, sessionID string) (*types.ReceiptInfo, error) {
	sess, err := s.SessionDAO.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, response.NotFound("this table session does not exist")
	}
	if sess.Status != models.SessionActive {
		return nil, response.Conflict("cannot preview a completed session")
	}

	receipt, _, err := s.buildReceipt(ctx, s.DB, sess, "", 0)
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// Checkout is one transactional unit: lock the session, compute the bill
// over a consistent snapshot of its orders and voucher uses, write the
// immutable analytics record, complete the session, and free the table.
// Any failure rolls everything back and leaves the session Active for a
// retry; a second checkout of the same session fails with Conflict.
func (s *CashierService) Checkout(ctx context.Context, sessionID, paymentMethod string, cashierID int64) (*types.ReceiptInfo, error) {
	var receipt *types.ReceiptInfo

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sess, err := s.SessionDAO.LockForUpdate(ctx, tx, sessionID)
		if err != nil {
			return err
		}
		if sess == nil {
			return response.NotFound("this table session does not exist")
		}
		if sess.Status != models.SessionActive {
			return response.Conflict("cannot checkout a completed session")
		}

		built, lines, err := s.buildReceipt(ctx, tx, sess, paymentMethod, cashierID)
		if err != nil {
			return err
		}

		itemsJSON, err := json.Marshal(lines)
		if err != nil {
			return err
		}

		record := models.AnalyticsCheckout{
			AnalyticsID:    uuid.NewString(),
			TableSessionID: sess.SessionID,
			Subtotal:       built.Bill.Subtotal,
			GstTotal:       built.Bill.GstTotal,
			SstTotal:       built.Bill.SstTotal,
			Discount:       built.Bill.Discount,
			RoundingAdj:    built.Bill.RoundingAdj,
			NetTotal:       built.Bill.NetTotal,
			Cashier:        cashierID,
			PaymentMethod:  paymentMethod,
			Items:          itemsJSON,
			CheckoutTime:   time.Now(),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.TableSession{}).
			Where("session_id = ?", sess.SessionID).
			Update("status", models.SessionCompleted).Error; err != nil {
			return err
		}

		// An admin-made Unavailable mark survives checkout.
		if err := tx.Model(&models.Table{}).
			Where("table_id = ? AND status <> ?", sess.TableID, models.TableUnavailable).
			Update("status", models.TableAvailable).Error; err != nil {
			return err
		}

		receipt = built
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.L.Info("checkout completed",
		zap.String("session_id", sessionID),
		zap.Float64("net_total", receipt.Bill.NetTotal),
		zap.String("payment_method", paymentMethod),
	)
	return receipt, nil
}

// buildReceipt loads everything billed against the session through the
// given handle (the checkout transaction or the plain pool for previews)
// and runs the billing math.
func (s *CashierService) buildReceipt(ctx context.Context, db *gorm.DB, sess *models.TableSession, paymentMethod string, cashierID int64) (*types.ReceiptInfo, []types.ReceiptLine, error) {
	var table models.Table
	if err := db.WithContext(ctx).
		Where("table_id = ?", sess.TableID).
		First(&table).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, response.NotFound("this table does not exist")
		}
		return nil, nil, err
	}

	var items []models.OrderItem
	if err := db.WithContext(ctx).
		Joins("JOIN orders ON orders.order_id = order_items.order_id").
		Where("orders.session_id = ?", sess.SessionID).
		Order("order_items.order_item_id").
		Find(&items).Error; err != nil {
		return nil, nil, err
	}

	var uses []models.VoucherUse
	if err := db.WithContext(ctx).
		Where("table_session_id = ?", sess.SessionID).
		Find(&uses).Error; err != nil {
		return nil, nil, err
	}

	var vouchers []models.Voucher
	if len(uses) > 0 {
		voucherIDs := make([]string, 0, len(uses))
		for _, use := range uses {
			voucherIDs = append(voucherIDs, use.VoucherID)
		}
		if err := db.WithContext(ctx).
			Where("voucher_id IN ?", voucherIDs).
			Find(&vouchers).Error; err != nil {
			return nil, nil, err
		}
	}

	lines, err := s.receiptLines(ctx, db, items)
	if err != nil {
		return nil, nil, err
	}

	bill := ComputeBill(items, vouchers, s.rates())

	rest := s.Config.Restaurant
	receipt := &types.ReceiptInfo{
		RestaurantName:     rest.Name,
		RestaurantCompany:  rest.Company,
		RegistrationNumber: rest.RegistrationNumber,
		Address:            rest.Address,
		Address2:           rest.Address2,
		City:               rest.City,
		State:              rest.State,
		Telephone:          rest.Telephone,
		SstID:              rest.SstID,
		TableID:            table.TableID,
		SessionID:          sess.SessionID,
		DateTime:           sess.StartDatetime,
		Cashier:            cashierID,
		PaymentMethod:      paymentMethod,
		Lines:              lines,
		Bill:               bill,
	}
	return receipt, lines, nil
}

func (s *CashierService) receiptLines(ctx context.Context, db *gorm.DB, items []models.OrderItem) ([]types.ReceiptLine, error) {
	lines := make([]types.ReceiptLine, 0, len(items))
	if len(items) == 0 {
		return lines, nil
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ItemID)
	}

	// Unscoped: retired menu items still label historical lines.
	var catalog []models.Item
	if err := db.WithContext(ctx).Unscoped().
		Where("item_id IN ?", ids).
		Find(&catalog).Error; err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(catalog))
	for _, item := range catalog {
		names[item.ItemID] = item.Name
	}

	for _, item := range items {
		lines = append(lines, types.ReceiptLine{
			Name:      names[item.ItemID],
			Quantity:  item.Quantity,
			Price:     item.Price,
			LineTotal: LineTotal(item),
		})
	}
	return lines, nil
}

func (s *CashierService) Analytics(ctx context.Context, min, max time.Time) ([]models.AnalyticsCheckout, error) {
	return s.AnalyticsDAO.Range(ctx, min, max)
}

// Stats summarizes checkout records for the standard reporting periods.
func (s *CashierService) Stats(ctx context.Context) (*types.StatsSummary, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfDay.AddDate(0, 0, -int((startOfDay.Weekday()+6)%7))
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	summary := &types.StatsSummary{}

	periods := []struct {
		start time.Time
		dest  *types.PeriodStats
	}{
		{startOfDay, &summary.Today},
		{startOfWeek, &summary.Week},
		{startOfMonth, &summary.Month},
		{startOfYear, &summary.Year},
	}
	for _, p := range periods {
		stats, err := s.AnalyticsDAO.Stats(ctx, p.start, now)
		if err != nil {
			return nil, err
		}
		*p.dest = stats
	}

	counts, err := s.AnalyticsDAO.PaymentMethodCounts(ctx, startOfYear, now)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, count := range counts {
		total += count
	}
	summary.PaymentMethodShare = make(map[string]float64, len(counts))
	for method, count := range counts {
		if total > 0 {
			summary.PaymentMethodShare[method] = float64(count) / float64(total) * 100
		}
	}

	return summary, nil
}
