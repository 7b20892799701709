// Package record persists built drawlists so a session can be inspected or
// replayed later.
//
// A recording file is a bbolt database. Each Recorder writes one session,
// identified by a random UUID, into its own bucket under "sessions". Frames
// are keyed by their big-endian frame number and stored zstd-compressed
// next to a msgpack-encoded FrameMeta.
package record

import (
	"encoding/binary"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"

	"github.com/grindlemire/go-tuicore/internal/errors"
)

var (
	bucketSessions = []byte("sessions")
	bucketFrames   = []byte("frames")
	bucketMeta     = []byte("meta")
	keyInfo        = []byte("info")
)

// FrameMeta describes one recorded frame.
type FrameMeta struct {
	Width   int       `msgpack:"w"`
	Height  int       `msgpack:"h"`
	Version uint32    `msgpack:"v"`
	Cmds    int       `msgpack:"c"`
	Strings int       `msgpack:"s"`
	Blobs   int       `msgpack:"b"`
	Dirty   int       `msgpack:"d"`
	Bytes   int       `msgpack:"n"`
	Time    time.Time `msgpack:"t"`
}

// SessionInfo summarizes one recorded session.
type SessionInfo struct {
	ID      uuid.UUID
	Started time.Time
	Frames  int
}

// FrameInfo summarizes one recorded frame.
type FrameInfo struct {
	Frame      uint64
	Meta       FrameMeta
	Compressed int
}

type sessionHeader struct {
	Started time.Time `msgpack:"t"`
}

// Options configures Open.
type Options struct {
	// Session resumes an existing session instead of starting a new one.
	Session uuid.UUID
	// Timeout bounds the wait for the file lock. Zero waits forever.
	Timeout time.Duration
	// ReadOnly opens the file for inspection; Append fails.
	ReadOnly bool
	Logger   *log.Logger
}

// Recorder appends frames of one session to a recording file. It is safe
// for concurrent use.
type Recorder struct {
	db       *bbolt.DB
	session  uuid.UUID
	readOnly bool
	logger   *log.Logger
}

func ioErr(err error, format string, args ...any) error {
	return errors.Wrap(errors.ErrCodeRecordIO, err, format, args...)
}

// Open opens or creates the recording file at path.
func Open(path string, opts Options) (*Recorder, error) {
	bdb, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: opts.Timeout, ReadOnly: opts.ReadOnly})
	if err != nil {
		return nil, ioErr(err, "open %s", path)
	}
	r := &Recorder{
		db:       bdb,
		session:  opts.Session,
		readOnly: opts.ReadOnly,
		logger:   opts.Logger,
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	if opts.ReadOnly {
		return r, nil
	}
	if r.session == uuid.Nil {
		r.session = uuid.New()
	}
	if err := r.ensureSession(); err != nil {
		bdb.Close()
		return nil, err
	}
	r.logger.Debug("recording", "path", path, "session", r.session)
	return r, nil
}

func (r *Recorder) ensureSession() error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(bucketSessions)
		if err != nil {
			return ioErr(err, "create sessions bucket")
		}
		sb, err := root.CreateBucketIfNotExists(sessionKey(r.session))
		if err != nil {
			return ioErr(err, "create session %s", r.session)
		}
		for _, name := range [][]byte{bucketFrames, bucketMeta} {
			if _, err := sb.CreateBucketIfNotExists(name); err != nil {
				return ioErr(err, "create %s bucket", name)
			}
		}
		if sb.Get(keyInfo) != nil {
			return nil
		}
		hdr, err := msgpack.Marshal(sessionHeader{Started: time.Now().UTC()})
		if err != nil {
			return ioErr(err, "encode session header")
		}
		return sb.Put(keyInfo, hdr)
	})
}

// Session returns the id of the session being written. It is uuid.Nil for a
// read-only recorder opened without a session.
func (r *Recorder) Session() uuid.UUID {
	return r.session
}

// NextFrame returns the number after the last frame stored in the session
// being written, or 0 when it holds no frames.
func (r *Recorder) NextFrame() (uint64, error) {
	var next uint64
	err := r.db.View(func(tx *bbolt.Tx) error {
		sb := sessionBucket(tx, r.session)
		if sb == nil {
			return nil
		}
		if k, _ := sb.Bucket(bucketFrames).Cursor().Last(); k != nil {
			next = binary.BigEndian.Uint64(k) + 1
		}
		return nil
	})
	return next, err
}

// Close closes the recording file.
func (r *Recorder) Close() error {
	if err := r.db.Close(); err != nil {
		return ioErr(err, "close")
	}
	return nil
}

func sessionKey(id uuid.UUID) []byte {
	return []byte(id.String())
}

func frameKey(frame uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, frame)
}

// Append stores one drawlist as the given frame of the current session,
// replacing any frame already stored under that number. dl is not retained.
func (r *Recorder) Append(frame uint64, dl []byte, meta FrameMeta) error {
	if r.readOnly {
		return errors.New(errors.ErrCodeRecordIO, "append to a read-only recording")
	}
	if meta.Bytes == 0 {
		meta.Bytes = len(dl)
	}
	if meta.Time.IsZero() {
		meta.Time = time.Now().UTC()
	}
	m, err := msgpack.Marshal(&meta)
	if err != nil {
		return ioErr(err, "encode frame %d metadata", frame)
	}

	buf := frameBufPool.Get().([]byte)
	defer func() { releaseFrameBuf(buf) }()
	buf, err = compress(buf[:0], dl)
	if err != nil {
		return ioErr(err, "compress frame %d", frame)
	}

	err = r.db.Update(func(tx *bbolt.Tx) error {
		sb := sessionBucket(tx, r.session)
		if sb == nil {
			return errors.New(errors.ErrCodeRecordIO, "session %s not found", r.session)
		}
		key := frameKey(frame)
		if err := sb.Bucket(bucketFrames).Put(key, buf); err != nil {
			return ioErr(err, "store frame %d", frame)
		}
		if err := sb.Bucket(bucketMeta).Put(key, m); err != nil {
			return ioErr(err, "store frame %d metadata", frame)
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.logger.Debug("recorded frame", "frame", frame, "bytes", len(dl), "compressed", len(buf))
	return nil
}

func sessionBucket(tx *bbolt.Tx, id uuid.UUID) *bbolt.Bucket {
	root := tx.Bucket(bucketSessions)
	if root == nil {
		return nil
	}
	return root.Bucket(sessionKey(id))
}

// Sessions lists the recorded sessions, oldest first.
func (r *Recorder) Sessions() ([]SessionInfo, error) {
	var out []SessionInfo
	err := r.db.View(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketSessions)
		if root == nil {
			return nil
		}
		return root.ForEach(func(k, v []byte) error {
			if v != nil {
				return nil
			}
			id, err := uuid.ParseBytes(k)
			if err != nil {
				return ioErr(err, "session key %q", k)
			}
			sb := root.Bucket(k)
			info := SessionInfo{ID: id, Frames: sb.Bucket(bucketFrames).Stats().KeyN}
			var hdr sessionHeader
			if raw := sb.Get(keyInfo); raw != nil {
				if err := msgpack.Unmarshal(raw, &hdr); err != nil {
					return ioErr(err, "decode session %s header", id)
				}
			}
			info.Started = hdr.Started
			out = append(out, info)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Started.Before(out[j].Started) })
	return out, nil
}

// Frames lists the frames of session in frame order.
func (r *Recorder) Frames(session uuid.UUID) ([]FrameInfo, error) {
	var out []FrameInfo
	err := r.db.View(func(tx *bbolt.Tx) error {
		sb := sessionBucket(tx, session)
		if sb == nil {
			return errors.New(errors.ErrCodeRecordIO, "session %s not found", session)
		}
		frames, metas := sb.Bucket(bucketFrames), sb.Bucket(bucketMeta)
		c := frames.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			fi := FrameInfo{Frame: binary.BigEndian.Uint64(k), Compressed: len(v)}
			if raw := metas.Get(k); raw != nil {
				if err := msgpack.Unmarshal(raw, &fi.Meta); err != nil {
					return ioErr(err, "decode frame %d metadata", fi.Frame)
				}
			}
			out = append(out, fi)
		}
		return nil
	})
	return out, err
}

// Load returns the drawlist and metadata of one recorded frame.
func (r *Recorder) Load(session uuid.UUID, frame uint64) ([]byte, FrameMeta, error) {
	var (
		dl   []byte
		meta FrameMeta
	)
	err := r.db.View(func(tx *bbolt.Tx) error {
		sb := sessionBucket(tx, session)
		if sb == nil {
			return errors.New(errors.ErrCodeRecordIO, "session %s not found", session)
		}
		key := frameKey(frame)
		raw := sb.Bucket(bucketFrames).Get(key)
		if raw == nil {
			return errors.New(errors.ErrCodeRecordIO, "frame %d not found in session %s", frame, session)
		}
		var err error
		if dl, err = decompress(raw); err != nil {
			return ioErr(err, "decompress frame %d", frame)
		}
		if m := sb.Bucket(bucketMeta).Get(key); m != nil {
			if err := msgpack.Unmarshal(m, &meta); err != nil {
				return ioErr(err, "decode frame %d metadata", frame)
			}
		}
		return nil
	})
	if err != nil {
		return nil, FrameMeta{}, err
	}
	return dl, meta, nil
}
