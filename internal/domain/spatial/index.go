// Package spatial stores static level geometry in fixed-size chunks for
// cheap broad-phase queries.
package spatial

import (
	"math"

	"github.com/younwookim/labrun/internal/domain/entity"
)

// Original tile map dimensions
const (
	DefaultTileSize  = 16
	DefaultChunkSize = 8
)

// ChunkCoord identifies one chunk of the index
type ChunkCoord struct {
	X, Y int
}

// Index maps chunk coordinates to the static rectangles stored in them.
// Tile and chunk sizes are fixed for the lifetime of the index.
type Index struct {
	tileSize  int
	chunkSize int
	chunkPx   float64
	chunks    map[ChunkCoord][]entity.Rect
	count     int
}

// NewIndex creates an empty index
func NewIndex(tileSize, chunkSize int) *Index {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Index{
		tileSize:  tileSize,
		chunkSize: chunkSize,
		chunkPx:   float64(tileSize * chunkSize),
		chunks:    make(map[ChunkCoord][]entity.Rect),
	}
}

// TileSize returns the tile edge in pixels
func (idx *Index) TileSize() int { return idx.tileSize }

// ChunkPixels returns the chunk edge in pixels
func (idx *Index) ChunkPixels() int { return idx.tileSize * idx.chunkSize }

// Len returns the number of stored rectangles
func (idx *Index) Len() int { return idx.count }

// ChunkOf returns the chunk holding p
func (idx *Index) ChunkOf(p entity.Vec2) ChunkCoord {
	return ChunkCoord{
		X: int(math.Floor(p.X / idx.chunkPx)),
		Y: int(math.Floor(p.Y / idx.chunkPx)),
	}
}

// Insert clips r at chunk borders and appends each piece to its chunk.
// Insertion order within a chunk is preserved.
func (idx *Index) Insert(r entity.Rect) {
	if r.Empty() {
		return
	}
	cp := idx.ChunkPixels()
	c0 := idx.ChunkOf(entity.Vec2{X: float64(r.X), Y: float64(r.Y)})
	c1 := idx.ChunkOf(entity.Vec2{X: float64(r.Right() - 1), Y: float64(r.Bottom() - 1)})

	for cy := c0.Y; cy <= c1.Y; cy++ {
		for cx := c0.X; cx <= c1.X; cx++ {
			piece := r.Intersect(entity.Rect{X: cx * cp, Y: cy * cp, W: cp, H: cp})
			if piece.Empty() {
				continue
			}
			c := ChunkCoord{cx, cy}
			idx.chunks[c] = append(idx.chunks[c], piece)
			idx.count++
		}
	}
}

// Chunk returns the rectangles stored in c
func (idx *Index) Chunk(c ChunkCoord) []entity.Rect {
	return idx.chunks[c]
}

// BroadPhase appends every rectangle from the chunks under the four corners
// of the sweep to dst.
//
// The result is an over-approximation for sweeps spanning at most two chunks
// per axis. A sweep whose middle crosses a third chunk on one axis misses that
// chunk; bodies in this game never move more than a chunk per tick.
func (idx *Index) BroadPhase(s entity.Sweep, dst []entity.Rect) []entity.Rect {
	var seen [4]ChunkCoord
	n := 0
	for _, corner := range s.Corners() {
		c := idx.ChunkOf(corner)
		dup := false
		for i := 0; i < n; i++ {
			if seen[i] == c {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		seen[n] = c
		n++
		dst = append(dst, idx.chunks[c]...)
	}
	return dst
}

// CollidePoint reports whether p lies inside a stored rectangle
func (idx *Index) CollidePoint(p entity.Vec2) bool {
	for _, r := range idx.chunks[idx.ChunkOf(p)] {
		if r.ContainsPoint(p) {
			return true
		}
	}
	return false
}

// Rects calls fn for every stored rectangle (debug rendering)
func (idx *Index) Rects(fn func(entity.Rect)) {
	for _, rects := range idx.chunks {
		for _, r := range rects {
			fn(r)
		}
	}
}

var _ entity.Geometry = (*Index)(nil)
