/*
Copyright © 2018 the crsgeom authors.
This file is part of crsgeom.

crsgeom is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

crsgeom is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with crsgeom.  If not, see <http://www.gnu.org/licenses/>.
*/

/*
Package srs is a transform provider for package reproject backed by the
proj4 implementation in github.com/ctessum/geom/proj. Reference strings
are proj4 strings (or names proj.Parse understands, such as "EPSG:4326").

Parsed spatial references and built transforms are cached, so a provider
can be shared across many reprojection calls without re-parsing. The
cache is safe for concurrent use.
*/
package srs

import (
	"fmt"
	"time"

	"github.com/ctessum/geom/proj"
	"github.com/patrickmn/go-cache"

	"github.com/spatialmodel/crsgeom/reproject"
)

// Provider resolves proj4 reference strings with ctessum/geom/proj and
// caches the results. The zero value is not usable; call New.
type Provider struct {
	refs  *cache.Cache // reference string -> *proj.SR
	trans *cache.Cache // "src|dst" -> proj.Transformer
}

// New returns a Provider with a never-expiring cache.
func New() *Provider {
	return &Provider{
		refs:  cache.New(cache.NoExpiration, 0),
		trans: cache.New(cache.NoExpiration, 0),
	}
}

// NewExpiring returns a Provider whose cache entries expire after ttl,
// for long-lived processes that see many distinct projections.
func NewExpiring(ttl time.Duration) *Provider {
	return &Provider{
		refs:  cache.New(ttl, 2*ttl),
		trans: cache.New(ttl, 2*ttl),
	}
}

// Transform returns a transform function from srcRef to dstRef. It
// implements reproject.Provider.
func (p *Provider) Transform(srcRef, dstRef string) (reproject.Func, error) {
	key := srcRef + "|" + dstRef
	if t, ok := p.trans.Get(key); ok {
		return reproject.Func(t.(proj.Transformer)), nil
	}
	src, err := p.parse(srcRef)
	if err != nil {
		return nil, err
	}
	dst, err := p.parse(dstRef)
	if err != nil {
		return nil, err
	}
	t, err := src.NewTransform(dst)
	if err != nil {
		return nil, fmt.Errorf("srs: building transform %q to %q: %w", srcRef, dstRef, err)
	}
	p.trans.Set(key, t, cache.DefaultExpiration)
	return reproject.Func(t), nil
}

func (p *Provider) parse(ref string) (*proj.SR, error) {
	if sr, ok := p.refs.Get(ref); ok {
		return sr.(*proj.SR), nil
	}
	sr, err := proj.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("srs: parsing %q: %w", ref, err)
	}
	p.refs.Set(ref, sr, cache.DefaultExpiration)
	return sr, nil
}
