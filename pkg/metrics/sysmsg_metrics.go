// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	sysMsgMetricSubsystem = "sysmsg"
)

var (
	SysMsgParamsAppended = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: gameserverNamespace,
		Subsystem: sysMsgMetricSubsystem,
		Name:      "params_appended_total",
		Help:      "系统消息追加的参数个数，按参数类型统计",
	}, []string{paramTypeLabelName})

	SysMsgParamCountCorrections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: gameserverNamespace,
		Subsystem: sysMsgMetricSubsystem,
		Name:      "param_count_corrections_total",
		Help:      "实际参数个数超过目录声明个数而自动修正目录的次数",
	}, []string{messageIDLabelName})

	SysMsgDeadLetterParams = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: gameserverNamespace,
		Subsystem: sysMsgMetricSubsystem,
		Name:      "dead_letter_params_total",
		Help:      "序列化时没有布局定义而只写出类型字节的参数个数",
	}, []string{paramTypeLabelName})
)

func registerSysMsgMetrics(r prometheus.Registerer) {
	r.MustRegister(SysMsgParamsAppended)
	r.MustRegister(SysMsgParamCountCorrections)
	r.MustRegister(SysMsgDeadLetterParams)
}
