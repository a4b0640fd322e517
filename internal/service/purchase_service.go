package service

import (
	"context"
	"fmt"
	"time"

	"ai-recipe-be/internal/config"
	"ai-recipe-be/internal/dto"
	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/repository/specification"
	"ai-recipe-be/internal/repository/unitofwork"
	"ai-recipe-be/pkg/events"
	pktNats "ai-recipe-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IPurchaseService interface {
	CreatePurchase(ctx context.Context, userId uuid.UUID, req *dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error)
	ListPurchases(ctx context.Context, userId uuid.UUID) ([]*dto.PurchaseResponse, error)
}

type purchaseService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  *pktNats.Publisher
	cfg        config.PaymentConfig
}

func NewPurchaseService(uowFactory unitofwork.RepositoryFactory, publisher *pktNats.Publisher, cfg config.PaymentConfig) IPurchaseService {
	return &purchaseService{
		uowFactory: uowFactory,
		publisher:  publisher,
		cfg:        cfg,
	}
}

// CreatePurchase writes one ledger row for a recipe checkout and asks
// the payment provider for a checkout URL. Status is set once at
// creation; no transitions are tracked here.
func (s *purchaseService) CreatePurchase(ctx context.Context, userId uuid.UUID, req *dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	recipe, err := uow.RecipeRepository().FindOne(ctx, specification.ByID{ID: req.RecipeId})
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, ErrNotFound
	}

	purchase := &entity.Purchase{
		Id:        uuid.New(),
		UserId:    userId,
		RecipeId:  recipe.Id,
		Provider:  "midtrans",
		Reference: uuid.New().String(),
		Amount:    req.Amount,
		Currency:  s.cfg.Currency,
		Status:    entity.PurchaseStatusInitiated,
		CreatedAt: time.Now(),
	}

	if err := uow.PurchaseRepository().Create(ctx, purchase); err != nil {
		return nil, err
	}

	// External call happens outside any DB transaction, after the row
	// is durable.
	checkoutURL := ""
	if s.cfg.MidtransServerKey != "" {
		var sClient snap.Client
		env := midtrans.Sandbox
		if s.cfg.IsProduction {
			env = midtrans.Production
		}
		sClient.New(s.cfg.MidtransServerKey, env)

		snapReq := &snap.Request{
			TransactionDetails: midtrans.TransactionDetails{
				OrderID:  purchase.Reference,
				GrossAmt: purchase.Amount,
			},
			CreditCard: &snap.CreditCardDetails{
				Secure: true,
			},
			Items: &[]midtrans.ItemDetails{
				{
					ID:    recipe.Id.String(),
					Price: purchase.Amount,
					Qty:   1,
					Name:  recipe.Title,
				},
			},
			EnabledPayments: snap.AllSnapPaymentType,
		}

		snapResp, midErr := sClient.CreateTransaction(snapReq)
		if midErr != nil {
			return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
		}
		checkoutURL = snapResp.RedirectURL
	}

	if s.publisher != nil {
		evt := events.BaseEvent{
			Type: "PURCHASE_CREATED",
			Data: map[string]interface{}{
				"purchase_id": purchase.Id,
				"user_id":     userId,
				"recipe_id":   recipe.Id,
				"reference":   purchase.Reference,
				"amount":      purchase.Amount,
				"currency":    purchase.Currency,
			},
			OccurredAt: time.Now(),
		}
		if err := s.publisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish PURCHASE_CREATED event: %v\n", err)
		}
	}

	res := mapPurchase(purchase)
	res.CheckoutURL = checkoutURL
	return res, nil
}

func (s *purchaseService) ListPurchases(ctx context.Context, userId uuid.UUID) ([]*dto.PurchaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	purchases, err := uow.PurchaseRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		res = append(res, mapPurchase(p))
	}
	return res, nil
}

func mapPurchase(p *entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		Id:        p.Id,
		RecipeId:  p.RecipeId,
		Provider:  p.Provider,
		Reference: p.Reference,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
	}
}
