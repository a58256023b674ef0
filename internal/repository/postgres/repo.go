package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/exchange-chat-service/internal/config"
	"github.com/s21platform/exchange-chat-service/internal/model"
)

// createRoomAttempts bounds the select/insert/re-select loop that resolves
// concurrent room creation for the same pair.
const createRoomAttempts = 3

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// CreateOrGetRoom returns the single room for the unordered pair
// {userA, userB}, creating it if absent. The pair is canonicalized here, at
// the one choke point all lookups and inserts share, so request order never
// produces two rooms. A uniqueness conflict means another caller won the
// create race; the loop re-reads and returns the winner's room, and the
// winner's exchange_request_id stands.
func (r *Repository) CreateOrGetRoom(ctx context.Context, userA, userB string, exchangeRequestID *string) (*model.Room, error) {
	a, b := model.CanonicalPair(userA, userB)

	for attempt := 0; attempt < createRoomAttempts; attempt++ {
		room, err := r.getRoomByPair(ctx, a, b)
		if err == nil {
			return room, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to get room by pair: %w", err)
		}

		query, args, err := sq.Insert("chat_rooms").
			Columns("participant_a", "participant_b", "exchange_request_id").
			Values(a, b, exchangeRequestID).
			Suffix("ON CONFLICT (participant_a, participant_b) DO NOTHING " +
				"RETURNING id, participant_a, participant_b, exchange_request_id, created_at, last_activity_at").
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build sql query: %v", err)
		}

		var created model.Room
		err = r.connection.GetContext(ctx, &created, query, args...)
		if err == nil {
			return &created, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to create room: %w", err)
		}
		// conflict: someone else created the room between the select and
		// the insert, next iteration reads it back
	}

	return nil, fmt.Errorf("failed to create or get room after %d attempts", createRoomAttempts)
}

func (r *Repository) getRoomByPair(ctx context.Context, a, b string) (*model.Room, error) {
	query, args, err := sq.
		Select("id", "participant_a", "participant_b", "exchange_request_id", "created_at", "last_activity_at").
		From("chat_rooms").
		Where(sq.Eq{"participant_a": a, "participant_b": b}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var room model.Room
	if err = r.connection.GetContext(ctx, &room, query, args...); err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *Repository) GetRoom(ctx context.Context, roomID string) (*model.Room, error) {
	query, args, err := sq.
		Select("id", "participant_a", "participant_b", "exchange_request_id", "created_at", "last_activity_at").
		From("chat_rooms").
		Where(sq.Eq{"id": roomID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var room model.Room
	err = r.connection.GetContext(ctx, &room, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return &room, nil
}

func (r *Repository) GetRoomsForUser(ctx context.Context, userID string) (*model.RoomPreviewList, error) {
	lastContent := func() string {
		sql, _, _ := sq.Select("content").
			From("messages m2").
			Where("m2.room_id = r.id").
			OrderBy("m2.sent_at DESC, m2.seq DESC").
			Limit(1).ToSql()
		return sql
	}()
	lastSentAt := func() string {
		sql, _, _ := sq.Select("sent_at").
			From("messages m2").
			Where("m2.room_id = r.id").
			OrderBy("m2.sent_at DESC, m2.seq DESC").
			Limit(1).ToSql()
		return sql
	}()

	query := sq.Select(
		"r.id as room_id",
		"r.exchange_request_id",
		"r.last_activity_at",
		"("+lastContent+") as last_message_content",
		"("+lastSentAt+") as last_message_sent_at",
	).
		Column(sq.Expr("CASE WHEN r.participant_a = ? THEN r.participant_b ELSE r.participant_a END as companion_id", userID)).
		From("chat_rooms r").
		Where(sq.Or{
			sq.Eq{"r.participant_a": userID},
			sq.Eq{"r.participant_b": userID},
		}).
		OrderBy("r.last_activity_at DESC", "r.id ASC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rooms model.RoomPreviewList
	err = r.connection.SelectContext(ctx, &rooms, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %v", err)
	}

	return &rooms, nil
}

// UpdateRoomActivity advances the last-activity marker only forward.
// Concurrent touches never move it backward.
func (r *Repository) UpdateRoomActivity(ctx context.Context, roomID string, at time.Time) error {
	query, args, err := sq.Update("chat_rooms").
		Set("last_activity_at", at).
		Where(sq.Eq{"id": roomID}).
		Where(sq.Lt{"last_activity_at": at}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update room activity: %v", err)
	}

	return nil
}

// SaveMessage appends a message to its room in a single statement: the row is
// either fully durable or not recorded at all. SentAt defaults to the current
// time, seq comes back from the store's insertion sequence.
func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	if strings.TrimSpace(message.Content) == "" {
		return fmt.Errorf("%w: content cannot be empty", model.ErrValidation)
	}

	if message.SentAt.IsZero() {
		message.SentAt = time.Now().UTC()
	}

	query, args, err := sq.Insert("messages").
		Columns("id", "room_id", "sender_id", "sender_label", "content", "sent_at").
		Values(message.ID, message.RoomID, message.SenderID, message.SenderLabel, message.Content, message.SentAt).
		Suffix("RETURNING seq").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	err = r.connection.GetContext(ctx, &message.Seq, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

func (r *Repository) GetRoomMessages(ctx context.Context, roomID string) (*model.MessageList, error) {
	return r.selectMessages(ctx, sq.
		Select("id", "room_id", "sender_id", "sender_label", "content", "sent_at", "seq").
		From("messages").
		Where(sq.Eq{"room_id": roomID}).
		OrderBy("sent_at ASC", "seq ASC"))
}

// GetRoomMessagesAfter returns the messages strictly newer than the cursor,
// in the same relative order GetRoomMessages would yield them.
func (r *Repository) GetRoomMessagesAfter(ctx context.Context, roomID string, after time.Time) (*model.MessageList, error) {
	return r.selectMessages(ctx, sq.
		Select("id", "room_id", "sender_id", "sender_label", "content", "sent_at", "seq").
		From("messages").
		Where(sq.Eq{"room_id": roomID}).
		Where(sq.Gt{"sent_at": after}).
		OrderBy("sent_at ASC", "seq ASC"))
}

func (r *Repository) selectMessages(ctx context.Context, builder sq.SelectBuilder) (*model.MessageList, error) {
	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.connection.SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %v", err)
	}

	return &messages, nil
}
