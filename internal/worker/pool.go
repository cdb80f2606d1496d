package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"gliitz-backend/internal/models"
	"gliitz-backend/internal/repository"
	"gliitz-backend/internal/services"
)

const maxDispatchRetries = 3

// Pool drains the booking-dispatch queue: each job loads the booking, emails
// the concierge desk, flips the status to sent and notifies the member's
// sockets. Dispatch is at-least-once; the per-job lock keeps concurrent
// workers off the same booking.
type Pool struct {
	redis          *redis.Client
	email          *services.EmailService
	userRepo       *repository.UserRepo
	venueRepo      *repository.VenueRepo
	bookingRepo    *repository.BookingRepo
	conciergeEmail string
	workerCount    int
	stopChan       chan struct{}
}

func NewPool(
	redisClient *redis.Client,
	email *services.EmailService,
	userRepo *repository.UserRepo,
	venueRepo *repository.VenueRepo,
	bookingRepo *repository.BookingRepo,
	conciergeEmail string,
	workerCount int,
) *Pool {
	return &Pool{
		redis:          redisClient,
		email:          email,
		userRepo:       userRepo,
		venueRepo:      venueRepo,
		bookingRepo:    bookingRepo,
		conciergeEmail: conciergeEmail,
		workerCount:    workerCount,
		stopChan:       make(chan struct{}),
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.workerCount; i++ {
		go p.worker(i)
	}
	log.Printf("Started %d booking dispatch workers", p.workerCount)
}

func (p *Pool) Stop() {
	close(p.stopChan)
}

func (p *Pool) worker(id int) {
	for {
		select {
		case <-p.stopChan:
			log.Printf("Worker %d shutting down", id)
			return
		default:
		}

		ctx := context.Background()

		// BLPOP with 30s timeout so the stop channel gets checked
		result, err := p.redis.BLPop(ctx, 30*time.Second, models.BookingQueue).Result()
		if err != nil {
			continue // timeout or transient error, retry
		}
		if len(result) < 2 {
			continue
		}

		var job models.BookingJob
		if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
			log.Printf("Worker %d: failed to parse job: %v", id, err)
			continue
		}

		lockKey := fmt.Sprintf("booking_lock:%s", job.BookingID.String())
		locked, err := p.redis.SetNX(ctx, lockKey, "1", 10*time.Minute).Result()
		if err != nil || !locked {
			continue // another worker has this booking
		}

		log.Printf("Worker %d: dispatching booking %s", id, job.BookingID)

		if err := p.dispatch(ctx, &job); err != nil {
			p.handleFailure(ctx, &job, err)
		} else {
			p.handleSuccess(ctx, &job)
		}

		p.redis.Del(ctx, lockKey)
	}
}

func (p *Pool) dispatch(ctx context.Context, job *models.BookingJob) error {
	booking, err := p.bookingRepo.GetByID(ctx, job.BookingID)
	if err != nil {
		return fmt.Errorf("failed to load booking: %w", err)
	}
	if booking.Status != models.BookingStatusPending {
		// Cancelled before dispatch, or already handled by a retry
		log.Printf("Booking %s is %s, skipping dispatch", booking.ID, booking.Status)
		return nil
	}

	member, err := p.userRepo.GetByID(ctx, job.UserID)
	if err != nil {
		return fmt.Errorf("failed to load member: %w", err)
	}

	venueName := ""
	if booking.VenueID != nil {
		if venue, err := p.venueRepo.GetByID(ctx, *booking.VenueID); err == nil {
			venueName = venue.Name
		} else {
			log.Printf("venue lookup failed for booking %s: %v", booking.ID, err)
		}
	}

	if err := p.email.SendBookingRequest(p.conciergeEmail, booking, member, venueName); err != nil {
		return err
	}

	if err := p.bookingRepo.UpdateStatus(ctx, booking.ID, models.BookingStatusSent); err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	return nil
}

func (p *Pool) handleSuccess(ctx context.Context, job *models.BookingJob) {
	p.publishUpdate(ctx, job, models.BookingStatusSent)
	log.Printf("Booking %s dispatched to concierge desk", job.BookingID)
}

func (p *Pool) handleFailure(ctx context.Context, job *models.BookingJob, err error) {
	job.RetryCount++

	if job.RetryCount < maxDispatchRetries {
		log.Printf("Booking %s dispatch failed (attempt %d): %v — retrying", job.BookingID, job.RetryCount, err)
		jobBytes, _ := json.Marshal(job)
		backoff := time.Duration(1<<uint(job.RetryCount)) * time.Second
		time.AfterFunc(backoff, func() {
			p.redis.LPush(context.Background(), models.BookingQueue, string(jobBytes))
		})
		return
	}

	log.Printf("Booking %s dispatch failed permanently: %v", job.BookingID, err)
	p.bookingRepo.UpdateStatus(ctx, job.BookingID, models.BookingStatusFailed)
	p.publishUpdate(ctx, job, models.BookingStatusFailed)
}

func (p *Pool) publishUpdate(ctx context.Context, job *models.BookingJob, status string) {
	msg := models.WSMessage{
		Type: "booking_update",
		Payload: models.BookingUpdate{
			BookingID: job.BookingID.String(),
			Status:    status,
		},
	}
	data, _ := json.Marshal(msg)
	p.redis.Publish(ctx, models.UserUpdatesChannel(job.UserID), string(data))
}
