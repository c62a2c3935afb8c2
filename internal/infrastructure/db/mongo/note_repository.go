package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quicknote/notes-api/internal/core/domain"
)

const noteCollection = "notes"

// NoteRepository persists notes. Every filter includes owner_id, mutations
// included, so ownership is checked by the database in the same operation
// that reads or writes — there is no fetch-then-mutate window.
type NoteRepository struct {
	coll *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{coll: db.Collection(noteCollection)}
}

type noteDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	Text       string             `bson:"text"`
	OwnerID    string             `bson:"owner_id"`
	CreatedAt  time.Time          `bson:"created_at"`
	ModifiedAt time.Time          `bson:"modified_at"`
}

func (d noteDoc) toDomain() domain.Note {
	return domain.Note{
		ID:         d.ID.Hex(),
		Title:      d.Title,
		Text:       d.Text,
		OwnerID:    d.OwnerID,
		CreatedAt:  d.CreatedAt,
		ModifiedAt: d.ModifiedAt,
	}
}

// EnsureIndexes creates the owner_id index used by every note query.
func (r *NoteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	return err
}

// ownedFilter builds the {_id, owner_id} filter shared by all by-id
// operations. An unparseable id cannot match any document, which reads as
// not-found — the same outcome as a note owned by someone else.
func ownedFilter(ownerID, noteID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return nil, domain.ErrNoteNotFound
	}
	return bson.M{"_id": oid, "owner_id": ownerID}, nil
}

func (r *NoteRepository) List(ctx context.Context, ownerID string) ([]domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeNotes(ctx, cursor)
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := noteDoc{
		Title:      note.Title,
		Text:       note.Text,
		OwnerID:    note.OwnerID,
		CreatedAt:  note.CreatedAt,
		ModifiedAt: note.ModifiedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *NoteRepository) FindByID(ctx context.Context, ownerID, noteID string) (*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownedFilter(ownerID, noteID)
	if err != nil {
		return nil, err
	}

	var doc noteDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}

	found := doc.toDomain()
	return &found, nil
}

// Update sets title, text, and modified_at on the owned note in a single
// owner-scoped FindOneAndUpdate; created_at is left untouched.
func (r *NoteRepository) Update(ctx context.Context, ownerID, noteID, title, text string, modifiedAt time.Time) (*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownedFilter(ownerID, noteID)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"title":       title,
		"text":        text,
		"modified_at": modifiedAt,
	}}

	var doc noteDoc
	err = r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("update note: %w", err)
	}

	updated := doc.toDomain()
	return &updated, nil
}

// Delete removes the owned note in a single owner-scoped DeleteOne.
func (r *NoteRepository) Delete(ctx context.Context, ownerID, noteID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownedFilter(ownerID, noteID)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

// SearchByTitle returns the owner's notes whose title contains query as a
// case-insensitive substring. The query is quoted so user input cannot
// inject regex syntax.
func (r *NoteRepository) SearchByTitle(ctx context.Context, ownerID, query string) ([]domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"owner_id": ownerID,
		"title": bson.M{
			"$regex":   regexp.QuoteMeta(query),
			"$options": "i",
		},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeNotes(ctx, cursor)
}

func decodeNotes(ctx context.Context, cursor *mongo.Cursor) ([]domain.Note, error) {
	notes := make([]domain.Note, 0)
	for cursor.Next(ctx) {
		var doc noteDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode note: %w", err)
		}
		notes = append(notes, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}
