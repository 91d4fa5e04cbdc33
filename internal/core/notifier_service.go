package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"familysync-backend/internal/db"
	"familysync-backend/internal/models"
)

// dispatchTimeout bounds one fan-out, recipient lookup included.
const dispatchTimeout = 30 * time.Second

// Notifier fans out push notifications after a triggering write has
// committed. Each dispatch runs on its own goroutine, bounded by a
// semaphore so a burst of writes cannot spawn unbounded sends. Failures
// are logged and dropped; a dispatch never surfaces an error to the
// operation that triggered it.
type Notifier struct {
	users     db.UserRepository
	sender    PushSender
	logger    *zap.Logger
	sem       chan struct{}
	wg        sync.WaitGroup
	closed    chan struct{}
	closeOnce sync.Once
}

// NewNotifier creates a Notifier running at most maxConcurrent dispatches
// at a time.
func NewNotifier(users db.UserRepository, sender PushSender, maxConcurrent int, logger *zap.Logger) *Notifier {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Notifier{
		users:  users,
		sender: sender,
		logger: logger,
		sem:    make(chan struct{}, maxConcurrent),
		closed: make(chan struct{}),
	}
}

// Close waits for in-flight dispatches to finish. New dispatches after
// Close are dropped.
func (n *Notifier) Close() {
	n.closeOnce.Do(func() { close(n.closed) })
	n.wg.Wait()
}

func (n *Notifier) dispatch(name string, fn func(ctx context.Context)) {
	select {
	case <-n.closed:
		n.logger.Warn("notification dropped, notifier closed", zap.String("dispatch", name))
		return
	default:
	}
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.sem <- struct{}{}
		defer func() { <-n.sem }()

		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()
		fn(ctx)
	}()
}

// TaskCreated notifies the task's assignee about the new assignment.
func (n *Notifier) TaskCreated(task *models.Task) {
	t := *task
	n.dispatch("task_created", func(ctx context.Context) {
		n.notifyTaskCreated(ctx, &t)
	})
}

// CalendarEventUpdated notifies every attendee that the event moved or
// its attendee set changed.
func (n *Notifier) CalendarEventUpdated(event *models.CalendarEvent) {
	e := *event
	n.dispatch("calendar_event_updated", func(ctx context.Context) {
		n.notifyCalendarEventUpdated(ctx, &e)
	})
}

// ShoppingItemPurchased notifies the family's parents that an item was
// bought and may need approval.
func (n *Notifier) ShoppingItemPurchased(familyID, listID, itemID string, item models.ShoppingItem) {
	n.dispatch("shopping_item_purchased", func(ctx context.Context) {
		n.notifyShoppingItemPurchased(ctx, familyID, listID, itemID, item)
	})
}

func (n *Notifier) notifyTaskCreated(ctx context.Context, task *models.Task) {
	assignee, err := n.users.GetByID(ctx, task.AssignedTo)
	if err != nil {
		n.logger.Warn("task notification skipped, assignee lookup failed",
			zap.String("familyId", task.FamilyID),
			zap.String("taskId", task.ID),
			zap.String("assignedTo", task.AssignedTo),
			zap.Error(err))
		return
	}
	if assignee.FCMToken == "" {
		return
	}
	n.send(ctx, []string{assignee.FCMToken}, models.PushNotification{
		Title: "New Task Assigned",
		Body:  fmt.Sprintf("You have been assigned: %s", task.Title),
		Data: map[string]string{
			"type":     models.NotifTypeTaskAssignment,
			"familyId": task.FamilyID,
			"refId":    task.ID,
		},
	}, task.FamilyID, task.ID)
}

func (n *Notifier) notifyCalendarEventUpdated(ctx context.Context, event *models.CalendarEvent) {
	if len(event.Attendees) == 0 {
		return
	}
	members, err := n.users.GetFamilyMembers(ctx, event.FamilyID)
	if err != nil {
		n.logger.Warn("calendar notification skipped, member lookup failed",
			zap.String("familyId", event.FamilyID),
			zap.String("eventId", event.ID),
			zap.Error(err))
		return
	}
	var tokens []string
	for _, m := range members {
		if m.FCMToken != "" && event.HasAttendee(m.ID) {
			tokens = append(tokens, m.FCMToken)
		}
	}
	if len(tokens) == 0 {
		return
	}
	n.send(ctx, tokens, models.PushNotification{
		Title: "Event Updated",
		Body:  fmt.Sprintf("The event '%s' has changed", event.Title),
		Data: map[string]string{
			"type":     models.NotifTypeCalendarUpdate,
			"familyId": event.FamilyID,
			"refId":    event.ID,
		},
	}, event.FamilyID, event.ID)
}

func (n *Notifier) notifyShoppingItemPurchased(ctx context.Context, familyID, listID, itemID string, item models.ShoppingItem) {
	members, err := n.users.GetFamilyMembers(ctx, familyID)
	if err != nil {
		n.logger.Warn("shopping notification skipped, member lookup failed",
			zap.String("familyId", familyID),
			zap.String("listId", listID),
			zap.Error(err))
		return
	}
	var tokens []string
	for _, m := range members {
		if m.Role == models.RoleParent && m.FCMToken != "" {
			tokens = append(tokens, m.FCMToken)
		}
	}
	if len(tokens) == 0 {
		return
	}
	n.send(ctx, tokens, models.PushNotification{
		Title: "Item Purchased",
		Body:  fmt.Sprintf("'%s' was marked as purchased", item.Name),
		Data: map[string]string{
			"type":     models.NotifTypeShoppingApproval,
			"familyId": familyID,
			"refId":    itemID,
		},
	}, familyID, itemID)
}

func (n *Notifier) send(ctx context.Context, tokens []string, p models.PushNotification, familyID, refID string) {
	failed, err := n.sender.Send(ctx, tokens, p)
	if err != nil {
		n.logger.Warn("push delivery failed",
			zap.String("familyId", familyID),
			zap.String("refId", refID),
			zap.Int("recipients", len(tokens)),
			zap.Error(err))
		return
	}
	if failed > 0 {
		n.logger.Warn("push delivery partially failed",
			zap.String("familyId", familyID),
			zap.String("refId", refID),
			zap.Int("recipients", len(tokens)),
			zap.Int("failed", failed))
	}
}
