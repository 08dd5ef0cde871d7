package response

import (
	"time"

	"crease/internal/usecase/commands"
	"crease/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookResultResponse struct {
	BookingIDs     []uuid.UUID `json:"bookingIds"`
	Total          int64       `json:"total"`
	OriginalTotal  int64       `json:"originalTotal"`
	DiscountAmount int64       `json:"discountAmount"`
	DiscountType   string      `json:"discountType,omitempty"`
}

type BookingResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"userId"`
	MachineID      uuid.UUID  `json:"machineId"`
	MachineName    string     `json:"machineName"`
	StartTime      time.Time  `json:"startTime"`
	EndTime        time.Time  `json:"endTime"`
	BallType       string     `json:"ballType"`
	PitchType      string     `json:"pitchType"`
	Status         string     `json:"status"`
	Price          int64      `json:"price"`
	OriginalPrice  int64      `json:"originalPrice"`
	DiscountAmount int64      `json:"discountAmount"`
	DiscountType   *string    `json:"discountType,omitempty"`
	FundingKind    string     `json:"fundingKind"`
	PackageID      *uuid.UUID `json:"packageId,omitempty"`
	SubscriptionID *uuid.UUID `json:"subscriptionId,omitempty"`
	PaymentID      *uuid.UUID `json:"paymentId,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type BookingListResponse struct {
	ID          uuid.UUID `json:"id"`
	MachineID   uuid.UUID `json:"machineId"`
	MachineName string    `json:"machineName"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      string    `json:"status"`
	Price       int64     `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromBookResult(r *commands.BookResult) *BookResultResponse {
	return &BookResultResponse{
		BookingIDs:     r.BookingIDs,
		Total:          r.Total,
		OriginalTotal:  r.OriginalTotal,
		DiscountAmount: r.DiscountAmount,
		DiscountType:   r.DiscountType,
	}
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:             v.ID,
		UserID:         v.UserID,
		MachineID:      v.MachineID,
		MachineName:    v.MachineName,
		StartTime:      v.StartTime,
		EndTime:        v.EndTime,
		BallType:       v.BallType,
		PitchType:      v.PitchType,
		Status:         v.Status,
		Price:          v.Price,
		OriginalPrice:  v.OriginalPrice,
		DiscountAmount: v.DiscountAmount,
		DiscountType:   v.DiscountType,
		FundingKind:    v.FundingKind,
		PackageID:      v.PackageID,
		SubscriptionID: v.SubscriptionID,
		PaymentID:      v.PaymentID,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	out := make([]*BookingListResponse, 0, len(items))
	for _, v := range items {
		out = append(out, &BookingListResponse{
			ID:          v.ID,
			MachineID:   v.MachineID,
			MachineName: v.MachineName,
			StartTime:   v.StartTime,
			EndTime:     v.EndTime,
			Status:      v.Status,
			Price:       v.Price,
			CreatedAt:   v.CreatedAt,
		})
	}
	return out
}
