/*
	Copyright 2023 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package chart

import "sync"

// Observers notifies subscribers when a chart changes.  The zero value has
// no subscribers and is ready for use.
type Observers struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn func(Data)
}

// Subscribe registers fn to be invoked on every change.  The returned
// function cancels the subscription; calling it more than once is harmless.
func (o *Observers) Subscribe(fn func(Data)) (unsubscribe func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.nextID
	o.nextID++
	o.subs = append(o.subs, subscription{id: id, fn: fn})
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		for idx, sub := range o.subs {
			if sub.id == id {
				o.subs = append(o.subs[:idx:idx], o.subs[idx+1:]...)
				return
			}
		}
	}
}

// Notify invokes every current subscriber with d, in subscription order.
// Subscribers may subscribe or unsubscribe from within their callback.
func (o *Observers) Notify(d Data) {
	o.mu.Lock()
	subs := make([]subscription, len(o.subs))
	copy(subs, o.subs)
	o.mu.Unlock()
	for _, sub := range subs {
		sub.fn(d)
	}
}
