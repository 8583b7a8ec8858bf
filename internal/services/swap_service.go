package services

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"skillswap_backend/internal/email"
	"skillswap_backend/internal/logger"
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// SwapService owns the swap request lifecycle:
//
//	pending -> accepted | rejected | cancelled
//	accepted -> completed
//
// Every transition is a conditional write on the expected source status, so
// two racing transitions cannot both apply; the loser gets INVALID_STATUS.
type SwapService interface {
	CreateRequest(ctx context.Context, fromUserID string, req *dto.CreateSwapRequest) (*dto.SwapRequestResponse, error)
	GetRequest(ctx context.Context, requestID, actingUserID string) (*dto.SwapRequestResponse, error)
	ListForUser(ctx context.Context, userID string) ([]*dto.SwapRequestResponse, error)

	Accept(ctx context.Context, requestID, actingUserID string) (*dto.SwapRequestResponse, error)
	Reject(ctx context.Context, requestID, actingUserID string) (*dto.SwapRequestResponse, error)
	Cancel(ctx context.Context, requestID, actingUserID string) (*dto.SwapRequestResponse, error)
	Complete(ctx context.Context, requestID, actingUserID string) (*dto.SwapRequestResponse, error)

	// DeleteRequest removes the caller's own outgoing request while it is
	// still pending. Terminal records are kept for reporting.
	DeleteRequest(ctx context.Context, requestID, actingUserID string) error
}

type SwapServiceImpl struct {
	swapRepo         repositories.SwapRequestRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	mailer           email.Sender
}

func NewSwapService(
	swapRepo repositories.SwapRequestRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	mailer email.Sender,
) SwapService {
	return &SwapServiceImpl{
		swapRepo:         swapRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		mailer:           mailer,
	}
}

func (s *SwapServiceImpl) CreateRequest(ctx context.Context, fromUserID string, req *dto.CreateSwapRequest) (*dto.SwapRequestResponse, error) {
	// Preconditions are checked in a fixed order; the first unmet one wins.
	if fromUserID == req.ToUserID {
		return nil, apperrors.ErrCannotSwapWithSelf
	}

	fromUser, err := s.loadUser(ctx, fromUserID)
	if err != nil {
		return nil, err
	}
	toUser, err := s.loadUser(ctx, req.ToUserID)
	if err != nil {
		return nil, err
	}

	if fromUser.IsBanned {
		return nil, swapValidationError("your account is banned")
	}
	if toUser.IsBanned {
		return nil, swapValidationError("the recipient is not available for swaps")
	}
	if !toUser.IsPublic {
		return nil, swapValidationError("the recipient's profile is private")
	}
	if !fromUser.OffersSkill(req.SkillOffered) {
		return nil, swapValidationError("skill_offered must be one of your offered skills")
	}
	if !toUser.OffersSkill(req.SkillWanted) {
		return nil, swapValidationError("skill_wanted must be one of the recipient's offered skills")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, swapValidationError("message must not be empty")
	}
	if utf8.RuneCountInString(req.Message) > models.MaxSwapMessageLength {
		return nil, swapValidationError("message must be at most 500 characters")
	}

	request := &models.SwapRequest{
		FromUserID:   fromUserID,
		ToUserID:     req.ToUserID,
		SkillOffered: req.SkillOffered,
		SkillWanted:  req.SkillWanted,
		Message:      req.Message,
		Status:       models.SwapStatusPending,
	}

	if err := s.swapRepo.Create(ctx, request); err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	s.notifyRequestReceived(ctx, request, fromUser, toUser)

	request.FromUser = fromUser
	request.ToUser = toUser
	return dto.NewSwapRequestResponse(request), nil
}

func (s *SwapServiceImpl) GetRequest(ctx context.Context, requestID, actingUserID string) (*dto.SwapRequestResponse, error) {
	request, err := s.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !request.Participant(actingUserID) {
		return nil, apperrors.ErrNotRequestParticipant
	}
	return dto.NewSwapRequestResponse(request), nil
}

func (s *SwapServiceImpl) ListForUser(ctx context.Context, userID string) ([]*dto.SwapRequestResponse, error) {
	requests, err := s.swapRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	responses := make([]*dto.SwapRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, dto.NewSwapRequestResponse(&requests[i]))
	}
	return responses, nil
}

func (s *SwapServiceImpl) Accept(ctx context.Context, requestID, actingUserID string) (*dto.SwapRequestResponse, error) {
	request, err := s.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if actingUserID != request.ToUserID {
		return nil, apperrors.ErrNotRequestParticipant
	}

	if err := s.transition(ctx, requestID, models.SwapStatusPending, models.SwapStatusAccepted); err != nil {
		return nil, err
	}

	s.notifyRequestAccepted(ctx, request)

	return s.GetRequest(ctx, requestID, actingUserID)
}

func (s *SwapServiceImpl) Reject(ctx context.Context, requestID, actingUserID string) (*dto.SwapRequestResponse, error) {
	request, err := s.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if actingUserID != request.ToUserID {
		return nil, apperrors.ErrNotRequestParticipant
	}

	if err := s.transition(ctx, requestID, models.SwapStatusPending, models.SwapStatusRejected); err != nil {
		return nil, err
	}

	return s.GetRequest(ctx, requestID, actingUserID)
}

func (s *SwapServiceImpl) Cancel(ctx context.Context, requestID, actingUserID string) (*dto.SwapRequestResponse, error) {
	request, err := s.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if actingUserID != request.FromUserID {
		return nil, apperrors.ErrNotRequestParticipant
	}

	if err := s.transition(ctx, requestID, models.SwapStatusPending, models.SwapStatusCancelled); err != nil {
		return nil, err
	}

	return s.GetRequest(ctx, requestID, actingUserID)
}

func (s *SwapServiceImpl) Complete(ctx context.Context, requestID, actingUserID string) (*dto.SwapRequestResponse, error) {
	request, err := s.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !request.Participant(actingUserID) {
		return nil, apperrors.ErrNotRequestParticipant
	}

	// Status write and the two total_swaps increments apply atomically in
	// the repository; a second Complete loses the conditional update.
	if err := s.swapRepo.Complete(ctx, requestID); err != nil {
		return nil, s.mapTransitionError(err, models.SwapStatusAccepted)
	}

	return s.GetRequest(ctx, requestID, actingUserID)
}

func (s *SwapServiceImpl) DeleteRequest(ctx context.Context, requestID, actingUserID string) error {
	request, err := s.loadRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if actingUserID != request.FromUserID {
		return apperrors.ErrNotRequestParticipant
	}

	if err := s.swapRepo.DeletePending(ctx, requestID); err != nil {
		return s.mapTransitionError(err, models.SwapStatusPending)
	}
	return nil
}

// --- internals ---

func (s *SwapServiceImpl) loadUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.RepositoryError(err)
	}
	return user, nil
}

func (s *SwapServiceImpl) loadRequest(ctx context.Context, id string) (*models.SwapRequest, error) {
	request, err := s.swapRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSwapRequestNotFound) {
			return nil, apperrors.ErrSwapRequestNotFound
		}
		return nil, apperrors.RepositoryError(err)
	}
	return request, nil
}

func (s *SwapServiceImpl) transition(ctx context.Context, id string, from, to models.SwapRequestStatus) error {
	if err := s.swapRepo.UpdateStatus(ctx, id, from, to); err != nil {
		return s.mapTransitionError(err, from)
	}
	return nil
}

func (s *SwapServiceImpl) mapTransitionError(err error, expected models.SwapRequestStatus) error {
	switch {
	case apperrors.Is(err, repositories.ErrStatusConflict):
		return apperrors.ErrInvalidStatus("swap", "Swap request is not in the '"+string(expected)+"' status")
	case apperrors.Is(err, repositories.ErrSwapRequestNotFound):
		return apperrors.ErrSwapRequestNotFound
	default:
		return apperrors.RepositoryError(err)
	}
}

func swapValidationError(message string) error {
	return apperrors.New(apperrors.CodeValidationFailed, "swap", message, http.StatusBadRequest)
}

// notifyRequestReceived records a notification and emails the recipient.
// Best-effort: failures are logged, the request stands.
func (s *SwapServiceImpl) notifyRequestReceived(ctx context.Context, request *models.SwapRequest, fromUser, toUser *models.User) {
	notification := &models.Notification{
		UserID:  toUser.ID,
		Type:    "swap_request",
		Title:   "New swap request",
		Message: fromUser.Name + " offers " + request.SkillOffered + " for your " + request.SkillWanted,
		Data:    datatypes.JSON([]byte(`{"request_id":"` + request.ID + `"}`)),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		logger.CtxWithError(ctx, "failed to store swap request notification", err, "request_id", request.ID)
	}

	if err := s.mailer.Send(
		toUser.Email,
		email.SwapRequestReceivedSubject(),
		email.SwapRequestReceivedBody(fromUser.Name, request.SkillOffered, request.SkillWanted),
	); err != nil {
		logger.CtxWithError(ctx, "failed to send swap request email", err, "request_id", request.ID)
	}
}

func (s *SwapServiceImpl) notifyRequestAccepted(ctx context.Context, request *models.SwapRequest) {
	var toName string
	if request.ToUser != nil {
		toName = request.ToUser.Name
	}

	notification := &models.Notification{
		UserID:  request.FromUserID,
		Type:    "swap_accepted",
		Title:   "Swap request accepted",
		Message: toName + " accepted your swap request",
		Data:    datatypes.JSON([]byte(`{"request_id":"` + request.ID + `"}`)),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		logger.CtxWithError(ctx, "failed to store swap accepted notification", err, "request_id", request.ID)
	}

	if request.FromUser != nil {
		if err := s.mailer.Send(
			request.FromUser.Email,
			email.SwapRequestAcceptedSubject(),
			email.SwapRequestAcceptedBody(toName, request.SkillWanted),
		); err != nil {
			logger.CtxWithError(ctx, "failed to send swap accepted email", err, "request_id", request.ID)
		}
	}
}
